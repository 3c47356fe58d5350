package dataset

// Column identifiers shared across the pipeline, in their normalized
// form. The long-view names HMO and Relative Abundance match what the
// dashboard renders.
const (
	ColStudyID       = "Study ID"
	ColSampleName    = "Sample Name"
	ColSecretorRaw   = "Secretor"
	ColSecretor      = "Secretor Status"
	ColLatitude      = "Latitude"
	ColLongitude     = "Longitude"
	ColDescription   = "Description"
	ColKeywords      = "Keywords"
	ColCollection    = "Collection Window"
	ColPopulation    = "Population"
	ColSampleType    = "Sample Type"
	ColAnalyte       = "HMO"
	ColConcentration = "Relative Abundance"
)
