package figtypes

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/kataras/fig-types/pkg/docio"
	"github.com/kataras/fig-types/pkg/extractor"
	"github.com/kataras/fig-types/pkg/figma"
	"github.com/kataras/fig-types/pkg/formatter"
	"github.com/kataras/fig-types/pkg/imager"

	"lukechampine.com/blake3"
)

// Version is reported by the CLI.
const Version = "0.1.0"

// Options configures the report pipeline.
type Options struct {
	Input              string   // path of a .json or .json.zst document
	NodeIDs            []string // empty = entire file
	InheritFileContext bool
	PlanAssets         bool
	ImageFormat        string // "png", "svg", "jpg", "pdf"; empty keeps the nodes' own settings
	ImageScales        []float64
	ImageDir           string
	ComponentTree      bool
	AllowUnknownFields bool
	Logger             Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the pipeline output.
type Result struct {
	Document    *Document
	Specs       *extractor.DesignSpecs
	Violations  []figma.Violation
	Assets      *imager.ExportPlan // nil unless Options.PlanAssets
	Fingerprint string
	Markdown    string // formatted markdown output
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Document is a decoded input: a whole file, or a bare node tree.
type Document struct {
	Path string
	// File is nil for a bare node tree.
	File *figma.File
	Root figma.Node
	// Ignored lists the unknown keys skipped by a lenient decode.
	Ignored []string
}

// Name returns the file name, or the base name of the path for a bare node tree.
func (d *Document) Name() string {
	if d.File != nil && d.File.Name != "" {
		return d.File.Name
	}
	if d.Path != "" {
		return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
	}
	return d.Root.Name
}

// Value returns the decoded value to encode: *figma.File or figma.Node.
func (d *Document) Value() any {
	if d.File != nil {
		return d.File
	}
	return d.Root
}

// AsFile returns the decoded file, or a file named after the document that
// wraps a bare node tree.
func (d *Document) AsFile() *figma.File {
	if d.File != nil {
		return d.File
	}
	return &figma.File{Name: d.Name(), Document: d.Root}
}

// Validate applies the tree rules, including the file-level ones for a whole file.
func (d *Document) Validate() []figma.Violation {
	if d.File != nil {
		return figma.ValidateFile(*d.File)
	}
	return figma.Validate(d.Root)
}

// Load reads and decodes the document at path. Files ending in ".zst", or whose
// content starts with the zstd magic number, are decompressed first.
func Load(path string, allowUnknown bool) (*Document, error) {
	data, err := docio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, allowUnknown)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Decode decodes a whole file when data has a top-level "document" key and a
// bare node otherwise.
func Decode(data []byte, allowUnknown bool) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if _, ok := probe["document"]; ok {
		var f figma.File
		ignored, err := decode(data, &f, allowUnknown)
		if err != nil {
			return nil, err
		}
		return &Document{File: &f, Root: f.Document, Ignored: ignored}, nil
	}

	var n figma.Node
	ignored, err := decode(data, &n, allowUnknown)
	if err != nil {
		return nil, err
	}
	return &Document{Root: n, Ignored: ignored}, nil
}

func decode(data []byte, v any, allowUnknown bool) ([]string, error) {
	dec := figma.NewDecoder(bytes.NewReader(data))
	if allowUnknown {
		dec.AllowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return nil, err
	}
	return dec.Ignored(), nil
}

// Encode writes the wire form of v, indented with indent when it is not empty.
func Encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := figma.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fingerprint returns the hex BLAKE3 hash of the kind of v followed by its
// compact wire encoding. Two values have the same fingerprint exactly when
// they encode to the same document, regardless of formatting or compression
// of the files they were read from.
func Fingerprint(v any) (string, error) {
	kind := "node"
	switch v.(type) {
	case figma.File, *figma.File:
		kind = "file"
	}

	data, err := figma.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}

	h := blake3.New(32, nil)
	h.Write([]byte(kind + "\n"))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Run executes the report pipeline on opts.Input and returns the result.
// Tree rule violations are reported in the result, not as an error.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.ImageDir == "" {
		opts.ImageDir = "figma-assets"
	}

	opts.logInfo("Reading %s...", opts.Input)
	doc, err := Load(opts.Input, opts.AllowUnknownFields)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	for _, key := range doc.Ignored {
		opts.logWarn("Ignored unknown field %s", key)
	}

	file := doc.AsFile()
	opts.logInfo("Document: %s", doc.Name())

	violations := doc.Validate()
	for _, v := range violations {
		opts.logError("%s", v)
	}

	fingerprint, err := Fingerprint(doc.Value())
	if err != nil {
		return nil, err
	}

	var specs *extractor.DesignSpecs
	if len(opts.NodeIDs) > 0 {
		for _, id := range opts.NodeIDs {
			if _, ok := figma.Find(file.Document, id); !ok {
				opts.logWarn("Node %s not found", id)
			}
		}
		opts.logInfo("Extracting %d specific node(s)...", len(opts.NodeIDs))
		specs = extractor.ExtractNodes(file, opts.NodeIDs, opts.InheritFileContext)
	} else {
		opts.logInfo("Extracting design specifications...")
		specs = extractor.Extract(file)
	}

	var plan *imager.ExportPlan
	if opts.PlanAssets {
		plan = planAssets(&opts, specs, file)
	}

	// Component tree is opt-in.
	if opts.ComponentTree {
		extractor.AttachAssetsToNodeTree(specs.NodeTree, specs.ExportedAssets)
	}

	opts.logInfo("Generating markdown documentation...")
	markdown := formatter.ToMarkdown(specs, doc.Name(), formatter.Options{
		ComponentTree: opts.ComponentTree,
		Violations:    violations,
		Ignored:       doc.Ignored,
	})

	return &Result{
		Document:    doc,
		Specs:       specs,
		Violations:  violations,
		Assets:      plan,
		Fingerprint: fingerprint,
		Markdown:    markdown,
	}, nil
}

// planAssets collects the exportable nodes of the extracted subtrees and plans
// their assets, recording them on specs.
func planAssets(opts *Options, specs *extractor.DesignSpecs, file *figma.File) *imager.ExportPlan {
	roots := []figma.Node{file.Document}
	if len(opts.NodeIDs) > 0 {
		roots = roots[:0]
		for _, id := range opts.NodeIDs {
			if n, ok := figma.Find(file.Document, id); ok {
				roots = append(roots, n)
			}
		}
	}

	var nodes []imager.ExportableNode
	var fills int
	for _, root := range roots {
		nodes = append(nodes, imager.CollectExportableNodes(root)...)
		fills += len(imager.CollectImageFillNodes(root))
	}
	opts.logInfo("Found %d node(s) with export settings", len(nodes))
	if fills > 0 {
		opts.logInfo("Found %d image fill(s); they are referenced, not exported", fills)
	}

	plan := imager.PlanExports(nodes, imager.ExportConfig{
		Format:    opts.ImageFormat,
		Scales:    opts.ImageScales,
		OutputDir: opts.ImageDir,
	})
	for _, err := range plan.Errors {
		opts.logWarn("%v", err)
	}

	for _, asset := range plan.Assets {
		specs.ExportedAssets = append(specs.ExportedAssets, extractor.ExportedAssetInfo{
			NodeID:   asset.NodeID,
			NodeName: asset.NodeName,
			FileName: asset.FileName,
			Format:   asset.Format,
			Scale:    asset.Scale,
		})
	}
	return plan
}

// CheckResult is the outcome of checking one document.
type CheckResult struct {
	Path        string
	Fingerprint string
	Violations  []figma.Violation
	Ignored     []string
	Err         error // read or decode failure
}

// OK reports whether the document decoded and broke no tree rule.
func (r CheckResult) OK() bool {
	return r.Err == nil && len(r.Violations) == 0
}

// Check loads, validates and fingerprints every path with at most concurrency
// documents in flight. Results are in the order of paths. Paths not yet
// started when ctx is done report the context error.
func Check(ctx context.Context, paths []string, concurrency int, allowUnknown bool) []CheckResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]CheckResult, len(paths))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i, path := range paths {
		results[i].Path = path
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		}

		wg.Add(1)
		go func(r *CheckResult) {
			defer wg.Done()
			defer func() { <-sem }()

			doc, err := Load(r.Path, allowUnknown)
			if err != nil {
				r.Err = err
				return
			}
			r.Ignored = doc.Ignored
			r.Violations = doc.Validate()
			r.Fingerprint, r.Err = Fingerprint(doc.Value())
		}(&results[i])
	}

	wg.Wait()
	return results
}

// ParseScales parses a comma-separated string of scale factors into a float64 slice.
func ParseScales(scalesStr string) ([]float64, error) {
	parts := strings.Split(scalesStr, ",")
	scales := make([]float64, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		s, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid scale value %q: %w", trimmed, err)
		}
		if s <= 0 {
			return nil, fmt.Errorf("scale value must be positive, got %g", s)
		}

		scales = append(scales, s)
	}

	if len(scales) == 0 {
		return []float64{1}, nil
	}

	return scales, nil
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns them in
// order without duplicates. The "1-2" form used in design tool URLs is
// normalized to "1:2".
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if !strings.Contains(trimmed, ":") {
			trimmed = strings.Replace(trimmed, "-", ":", 1)
		}
		if !seen[trimmed] {
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}

	return result
}
