package catalog

import "github.com/pamirlabs/glacier-atlas/internal/models"

// Layer-explainer table for the educational mode, ordered surface to bedrock.
// Depths are typical for a large Pamir valley glacier.
var iceLayers = []models.IceLayer{
	{
		ID:          "snow",
		Name:        "Seasonal snow",
		NameTajik:   "Барфи мавсимӣ",
		DepthFromM:  0,
		DepthToM:    3,
		Density:     300,
		Color:       "#f5f9ff",
		Description: "Fresh accumulation, lost or compacted within a few seasons.",
	},
	{
		ID:          "firn",
		Name:        "Firn",
		NameTajik:   "Фирн",
		DepthFromM:  3,
		DepthToM:    40,
		Density:     600,
		Color:       "#dcebf7",
		Description: "Multi-year snow recrystallizing under its own weight into granular ice.",
	},
	{
		ID:          "ice",
		Name:        "Glacial ice",
		NameTajik:   "Яхи пиряхӣ",
		DepthFromM:  40,
		DepthToM:    900,
		Density:     900,
		Color:       "#8fc6e8",
		Description: "Dense impermeable ice that deforms and flows downslope.",
	},
	{
		ID:          "moraine",
		Name:        "Basal moraine",
		NameTajik:   "Морена",
		DepthFromM:  900,
		DepthToM:    950,
		Density:     1900,
		Color:       "#8a7a66",
		Description: "Rock debris dragged along the bed, ground into till.",
	},
	{
		ID:          "bedrock",
		Name:        "Bedrock",
		NameTajik:   "Санги таҳкурсӣ",
		DepthFromM:  950,
		DepthToM:    1000,
		Density:     2700,
		Color:       "#5d5148",
		Description: "The valley floor carved by the moving ice above it.",
	},
}
