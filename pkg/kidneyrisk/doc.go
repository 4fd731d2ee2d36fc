// Package kidneyrisk predicts a kidney disease risk level from a patient
// record using a pre-fitted scaler and classifier.
//
// Quick start:
//
//	p, err := kidneyrisk.New(kidneyrisk.WithModelDir("models/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	res, _ := p.Predict(ctx, map[string]any{
//	    "Age of the patient":    62,
//	    "Hypertension (yes/no)": "yes",
//	    // ... every other field from p.Fields()
//	})
//	fmt.Println(res.Class, res.Label) // 2 Moderate Risk
//
// Artifacts are loaded once by New. A Predictor is safe for concurrent use;
// predictions are processed one at a time.
package kidneyrisk
