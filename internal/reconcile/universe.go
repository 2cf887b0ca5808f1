// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package reconcile

import (
	"github.com/mia-platform/atlanctl/internal/typedef"
)

// assetTypes is every asset type name a custom metadata attribute can be applied to.
var assetTypes = typedef.NewStringSet(
	"ADLSAccount",
	"ADLSContainer",
	"ADLSObject",
	"AnaplanPage",
	"AnaplanList",
	"AnaplanLineItem",
	"AnaplanWorkspace",
	"AnaplanModule",
	"AnaplanModel",
	"AnaplanApp",
	"AnaplanDimension",
	"AnaplanView",
	"APIObject",
	"APIQuery",
	"APIField",
	"APIPath",
	"APISpec",
	"Application",
	"ApplicationField",
	"Collection",
	"Query",
	"BIProcess",
	"Badge",
	"Column",
	"ColumnProcess",
	"Connection",
	"CustomEntity",
	"DataStudioAsset",
	"DataverseAttribute",
	"DataverseEntity",
	"Database",
	"DbtColumnProcess",
	"DbtMetric",
	"DbtModel",
	"DbtModelColumn",
	"DbtProcess",
	"DbtSource",
	"Folder",
	"GCSBucket",
	"GCSObject",
	"Insight",
	"KafkaConsumerGroup",
	"KafkaTopic",
	"Process",
	"Link",
	"LookerDashboard",
	"LookerExplore",
	"LookerField",
	"LookerFolder",
	"LookerLook",
	"LookerModel",
	"LookerProject",
	"LookerQuery",
	"LookerTile",
	"LookerView",
	"MCIncident",
	"MCMonitor",
	"MaterialisedView",
	"MetabaseCollection",
	"MetabaseDashboard",
	"MetabaseQuestion",
	"ModeChart",
	"ModeCollection",
	"ModeQuery",
	"ModeReport",
	"ModeWorkspace",
	"PowerBIColumn",
	"PowerBIDashboard",
	"PowerBIDataflow",
	"PowerBIDataset",
	"PowerBIDatasource",
	"PowerBIMeasure",
	"PowerBIPage",
	"PowerBIReport",
	"PowerBITable",
	"PowerBITile",
	"PowerBIWorkspace",
	"PresetChart",
	"PresetDashboard",
	"PresetDataset",
	"PresetWorkspace",
	"Procedure",
	"QlikApp",
	"QlikChart",
	"QlikDataset",
	"QlikSheet",
	"QlikSpace",
	"QlikStream",
	"QuickSightAnalysis",
	"QuickSightAnalysisVisual",
	"QuickSightDashboard",
	"QuickSightDashboardVisual",
	"QuickSightDataset",
	"QuickSightDatasetField",
	"QuickSightFolder",
	"Readme",
	"ReadmeTemplate",
	"RedashDashboard",
	"RedashQuery",
	"RedashVisualization",
	"S3Bucket",
	"S3Object",
	"SalesforceDashboard",
	"SalesforceField",
	"SalesforceObject",
	"SalesforceOrganization",
	"SalesforceReport",
	"Schema",
	"SigmaDataElement",
	"SigmaDataElementField",
	"SigmaDataset",
	"SigmaDatasetColumn",
	"SigmaPage",
	"SigmaWorkbook",
	"SnowflakePipe",
	"SnowflakeStream",
	"SnowflakeTag",
	"SupersetChart",
	"SupersetDashboard",
	"SupersetDataset",
	"Table",
	"TablePartition",
	"TableauCalculatedField",
	"TableauDashboard",
	"TableauDatasource",
	"TableauDatasourceField",
	"TableauFlow",
	"TableauMetric",
	"TableauProject",
	"TableauSite",
	"TableauWorkbook",
	"TableauWorksheet",
	"ThoughtspotAnswer",
	"ThoughtspotDashlet",
	"ThoughtspotLiveboard",
	"View",
)

var (
	glossaryTypes   = typedef.NewStringSet("AtlasGlossary", "AtlasGlossaryCategory", "AtlasGlossaryTerm")
	domains         = typedef.NewStringSet("*/super")
	domainTypes     = typedef.NewStringSet("DataDomain", "DataProduct")
	otherAssetTypes = typedef.NewStringSet("File")
)

// AssetTypes returns the asset types matched by "all".
func AssetTypes() typedef.StringSet {
	return typedef.NewStringSet(assetTypes...)
}

// GlossaryTypes returns the glossary types matched by "all".
func GlossaryTypes() typedef.StringSet {
	return typedef.NewStringSet(glossaryTypes...)
}

// Domains returns the domains matched by "all".
func Domains() typedef.StringSet {
	return typedef.NewStringSet(domains...)
}

// DomainTypes returns the domain types matched by "all".
func DomainTypes() typedef.StringSet {
	return typedef.NewStringSet(domainTypes...)
}

// OtherAssetTypes returns the other asset types matched by "all".
func OtherAssetTypes() typedef.StringSet {
	return typedef.NewStringSet(otherAssetTypes...)
}
