package catalog

import "github.com/pamirlabs/glacier-atlas/internal/models"

// Reference data for the major glaciers of Tajikistan. Figures follow the
// published Pamir inventories; volumes and thicknesses are rounded survey
// estimates, not measurements of record.
var glaciers = []models.Glacier{
	{
		ID:           "fedchenko",
		Name:         "Fedchenko Glacier",
		NameTajik:    "Пиряхи Федченко",
		Latitude:     38.7833,
		Longitude:    72.3167,
		AreaKm2:      700,
		VolumeKm3:    144,
		ElevationMin: 2900,
		ElevationMax: 5400,
		Status:       models.StatusMelting,
		MeltRate:     0.6,
		MeanTemp:     -6.8,
		ThicknessM:   1000,
		Risk:         models.RiskMedium,
		Region:       "Gorno-Badakhshan",
		Shape:        models.ShapeValley,
		Description:  "The longest glacier outside the polar regions, feeding the Muksu and ultimately the Amu Darya.",
	},
	{
		ID:           "grumm-grzhimailo",
		Name:         "Grumm-Grzhimailo Glacier",
		NameTajik:    "Пиряхи Грумм-Гржимайло",
		Latitude:     38.8667,
		Longitude:    72.5333,
		AreaKm2:      143,
		VolumeKm3:    26,
		ElevationMin: 3600,
		ElevationMax: 6300,
		Status:       models.StatusStable,
		MeltRate:     0.2,
		MeanTemp:     -9.4,
		ThicknessM:   380,
		Risk:         models.RiskLow,
		Region:       "Gorno-Badakhshan",
		Shape:        models.ShapeValley,
		Description:  "Large compound-valley glacier on the eastern slope of the Academy of Sciences Range.",
	},
	{
		ID:           "garmo",
		Name:         "Garmo Glacier",
		NameTajik:    "Пиряхи Гармо",
		Latitude:     38.85,
		Longitude:    72.0167,
		AreaKm2:      114,
		VolumeKm3:    19,
		ElevationMin: 3000,
		ElevationMax: 6200,
		Status:       models.StatusMelting,
		MeltRate:     0.8,
		MeanTemp:     -5.9,
		ThicknessM:   320,
		Risk:         models.RiskMedium,
		Region:       "Rasht Valley",
		Shape:        models.ShapeValley,
		Description:  "Drains the western cirques below Ismoil Somoni Peak into the Obikhingou basin.",
	},
	{
		ID:           "medvezhiy",
		Name:         "Medvezhiy Glacier",
		NameTajik:    "Пиряхи Хирс",
		Latitude:     38.6333,
		Longitude:    72.25,
		AreaKm2:      25,
		VolumeKm3:    3.2,
		ElevationMin: 2800,
		ElevationMax: 5500,
		Status:       models.StatusCritical,
		MeltRate:     1.9,
		MeanTemp:     -3.1,
		ThicknessM:   160,
		Risk:         models.RiskHigh,
		Region:       "Gorno-Badakhshan",
		Shape:        models.ShapeValley,
		Description:  "Surge-type glacier on the Vanj river, known for damming outburst floods during advances.",
	},
	{
		ID:           "rgo",
		Name:         "Russian Geographical Society Glacier",
		NameTajik:    "Пиряхи ҶГР",
		Latitude:     38.9167,
		Longitude:    71.9667,
		AreaKm2:      64,
		VolumeKm3:    9.5,
		ElevationMin: 3200,
		ElevationMax: 6000,
		Status:       models.StatusMelting,
		MeltRate:     0.7,
		MeanTemp:     -6.2,
		ThicknessM:   260,
		Risk:         models.RiskMedium,
		Region:       "Rasht Valley",
		Shape:        models.ShapeValley,
		Description:  "Feeds the Kirgizob headwaters west of the Academy of Sciences Range.",
	},
	{
		ID:           "bivachny",
		Name:         "Bivachny Glacier",
		NameTajik:    "Пиряхи Бивачный",
		Latitude:     38.8,
		Longitude:    72.2,
		AreaKm2:      37,
		VolumeKm3:    5.6,
		ElevationMin: 3400,
		ElevationMax: 6100,
		Status:       models.StatusMelting,
		MeltRate:     0.9,
		MeanTemp:     -6.5,
		ThicknessM:   210,
		Risk:         models.RiskMedium,
		Region:       "Gorno-Badakhshan",
		Shape:        models.ShapeMountain,
		Description:  "Principal western tributary of the Fedchenko system, heavily debris-covered at the confluence.",
	},
	{
		ID:           "sagran",
		Name:         "Sagran Glacier",
		NameTajik:    "Пиряхи Сагрон",
		Latitude:     39.0667,
		Longitude:    71.7333,
		AreaKm2:      48,
		VolumeKm3:    6.8,
		ElevationMin: 3100,
		ElevationMax: 5900,
		Status:       models.StatusStable,
		MeltRate:     0.3,
		MeanTemp:     -7.8,
		ThicknessM:   240,
		Risk:         models.RiskLow,
		Region:       "Rasht Valley",
		Shape:        models.ShapeValley,
		Description:  "North-flowing valley glacier of the Peter the First Range above the Muksu.",
	},
	{
		ID:           "zeravshan",
		Name:         "Zeravshan Glacier",
		NameTajik:    "Пиряхи Зарафшон",
		Latitude:     39.5,
		Longitude:    70.8333,
		AreaKm2:      41,
		VolumeKm3:    4.9,
		ElevationMin: 2700,
		ElevationMax: 5100,
		Status:       models.StatusCritical,
		MeltRate:     1.4,
		MeanTemp:     -2.6,
		ThicknessM:   170,
		Risk:         models.RiskHigh,
		Region:       "Zeravshan Range",
		Shape:        models.ShapeValley,
		Description:  "Source of the Zeravshan river; its tongue has retreated more than two kilometers since the 1920s.",
	},
	{
		ID:           "skogach",
		Name:         "Skogach Glacier",
		NameTajik:    "Пиряхи Скогач",
		Latitude:     39.1333,
		Longitude:    70.4667,
		AreaKm2:      11,
		VolumeKm3:    0.9,
		ElevationMin: 3300,
		ElevationMax: 4900,
		Status:       models.StatusMelting,
		MeltRate:     1.1,
		MeanTemp:     -3.9,
		ThicknessM:   95,
		Risk:         models.RiskMedium,
		Region:       "Zeravshan Range",
		Shape:        models.ShapeMountain,
		Description:  "Small cirque-fed glacier of the Hissar Range headwaters.",
	},
	{
		ID:           "mushketov",
		Name:         "Mushketov Glacier",
		NameTajik:    "Пиряхи Мушкетов",
		Latitude:     39.2,
		Longitude:    72.9,
		AreaKm2:      19,
		VolumeKm3:    2.1,
		ElevationMin: 3900,
		ElevationMax: 6200,
		Status:       models.StatusStable,
		MeltRate:     0.2,
		MeanTemp:     -10.3,
		ThicknessM:   140,
		Risk:         models.RiskLow,
		Region:       "Trans-Alay",
		Shape:        models.ShapePiedmont,
		Description:  "Broad piedmont lobe below the Trans-Alay crest near Lenin Peak.",
	},
}
