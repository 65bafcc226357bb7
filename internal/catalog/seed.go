package catalog

import "github.com/abhisek/triage/internal/ranking"

// seedConditions is the built-in symptom catalog. Weights are illustrative
// and carry no clinical meaning.
var seedConditions = ranking.Catalog{
	{
		Name: "Common cold",
		Weights: map[string]float64{
			"runny nose":  2.0,
			"sneezing":    1.5,
			"sore throat": 1.5,
			"cough":       1.0,
			"congestion":  2.0,
			"fatigue":     0.5,
			"headache":    0.5,
			"fever":       0.3,
		},
	},
	{
		Name: "Influenza",
		Weights: map[string]float64{
			"fever":       2.5,
			"body aches":  2.5,
			"chills":      2.0,
			"fatigue":     2.0,
			"headache":    1.5,
			"cough":       1.5,
			"sore throat": 0.8,
			"runny nose":  0.5,
		},
	},
	{
		Name: "COVID-19",
		Weights: map[string]float64{
			"fever":               2.0,
			"cough":               2.0,
			"loss of taste/smell": 3.0,
			"shortness of breath": 2.0,
			"fatigue":             1.5,
			"body aches":          1.0,
			"headache":            1.0,
			"sore throat":         0.8,
		},
	},
	{
		Name: "Allergic rhinitis",
		Weights: map[string]float64{
			"sneezing":   2.5,
			"itchy eyes": 3.0,
			"runny nose": 2.0,
			"congestion": 1.5,
			"cough":      0.3,
		},
	},
	{
		Name: "Strep throat",
		Weights: map[string]float64{
			"sore throat":         3.0,
			"fever":               1.5,
			"swollen lymph nodes": 2.5,
			"painful swallowing":  2.5,
			"headache":            0.8,
		},
	},
}
