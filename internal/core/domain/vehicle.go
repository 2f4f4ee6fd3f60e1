package domain

// Feature column names, as the artifact was trained on them.
const (
	FeatureCylinders   = "cylinders"
	FeatureHorsepower  = "horsepower"
	FeatureWeight      = "weight"
	FeatureCarAge      = "car_age"
	FeatureOriginJapan = "origin_japan"
	FeatureOriginUSA   = "origin_usa"
)

// Vehicle is the feature record for a single prediction.
// Origin is one-hot encoded; Europe is the dropped reference category.
type Vehicle struct {
	Cylinders   float64
	Horsepower  float64
	Weight      float64
	CarAge      float64
	OriginJapan float64
	OriginUSA   float64
}

// ExampleVehicle returns the fixed record the command predicts for.
func ExampleVehicle() Vehicle {
	return Vehicle{
		Cylinders:   4,
		Horsepower:  95,
		Weight:      2400,
		CarAge:      12,
		OriginJapan: 1,
		OriginUSA:   0,
	}
}

// Features returns the record keyed by column name.
func (v Vehicle) Features() map[string]float64 {
	return map[string]float64{
		FeatureCylinders:   v.Cylinders,
		FeatureHorsepower:  v.Horsepower,
		FeatureWeight:      v.Weight,
		FeatureCarAge:      v.CarAge,
		FeatureOriginJapan: v.OriginJapan,
		FeatureOriginUSA:   v.OriginUSA,
	}
}
