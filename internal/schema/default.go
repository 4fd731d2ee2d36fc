package schema

func yesNo() []string { return []string{"no", "yes"} }

// DefaultFields returns the built-in clinical fields in display order.
func DefaultFields() []Field {
	return []Field{
		Numeric{Label: "Serum phosphate level", Min: 0.5, Max: 6.0, Step: 0.1, Default: 3.5},
		Numeric{Label: "Random blood glucose level (mg/dl)", Min: 50, Max: 500, Step: 1, Default: 100, Integer: true},
		Numeric{Label: "Duration of diabetes mellitus (years)", Min: 0, Max: 50, Step: 1, Default: 5, Integer: true},
		Numeric{Label: "C-reactive protein (CRP) level", Min: 0, Max: 10, Step: 0.1, Default: 0.5},
		Numeric{Label: "Blood pressure (mm/Hg)", Min: 70, Max: 200, Step: 1, Default: 120, Integer: true},
		Numeric{Label: "Cystatin C level", Min: 0.5, Max: 2.5, Step: 0.1, Default: 0.8},
		Numeric{Label: "Age of the patient", Min: 18, Max: 100, Step: 1, Default: 50, Integer: true},
		Numeric{Label: "Sodium level (mEq/L)", Min: 120, Max: 160, Step: 0.1, Default: 140},
		Numeric{Label: "Body Mass Index (BMI)", Min: 15, Max: 50, Step: 0.1, Default: 25},
		Numeric{Label: "Red blood cell count (millions/cumm)", Min: 3, Max: 6, Step: 0.1, Default: 4.5},
		Numeric{Label: "Urine protein-to-creatinine ratio", Min: 0, Max: 5, Step: 0.1, Default: 0.2},
		Numeric{Label: "Cholesterol level", Min: 100, Max: 300, Step: 1, Default: 180, Integer: true},
		Numeric{Label: "Urine output (ml/day)", Min: 500, Max: 3000, Step: 100, Default: 1500, Integer: true},
		Categorical{Label: "Appetite (good/poor)", Options: []string{"good", "poor"}},
		Categorical{Label: "Hypertension (yes/no)", Options: yesNo()},
		Categorical{Label: "Sugar in urine", Options: yesNo()},
		Categorical{Label: "Pedal edema (yes/no)", Options: yesNo()},
		Categorical{Label: "Albumin in urine", Options: yesNo()},
		Categorical{Label: "Pus cells in urine", Options: yesNo()},
		Categorical{Label: "Bacteria in urine", Options: yesNo()},
		Categorical{Label: "Anemia (yes/no)", Options: yesNo()},
		Categorical{Label: "Red blood cells in urine", Options: yesNo()},
		Categorical{Label: "Smoking status", Options: yesNo()},
		Categorical{Label: "Diabetes mellitus (yes/no)", Options: yesNo()},
		Categorical{Label: "Urinary sediment microscopy results", Options: []string{"normal", "abnormal"}},
		Categorical{Label: "Pus cell clumps in urine", Options: yesNo()},
	}
}

// Default returns the built-in clinical schema. It panics if the built-in
// table is inconsistent, which the package tests rule out.
func Default() *Schema {
	s, err := New(DefaultFields()...)
	if err != nil {
		panic(err)
	}
	return s
}
