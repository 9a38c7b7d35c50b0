// Package figtypes reads, validates, fingerprints and summarizes design
// documents written in the canonical wire format of package figma: a whole
// file, or a bare node tree, stored as JSON or zstd-compressed JSON.
//
// The CLI lives in cmd/fig-types; this root package exposes the same
// operations as a Go API so that callers can embed them in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figtypes:
//
//	import "github.com/kataras/fig-types" // package figtypes
//
// # Quick start
//
//	result, err := figtypes.Run(figtypes.Options{
//	    Input:       "design.json.zst",
//	    PlanAssets:  true,
//	    ImageFormat: "png",
//	    ImageScales: []float64{1, 2},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design.md", []byte(result.Markdown), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Strictness
//
// Decoding fails on any key the schema does not declare. Set
// [Options.AllowUnknownFields] to skip such keys instead; they are listed
// in [Document.Ignored] and in the report.
//
// # Batch checks
//
// [Check] validates and fingerprints many documents concurrently. Two
// documents have the same [Fingerprint] exactly when they encode to the
// same canonical bytes.
package figtypes
