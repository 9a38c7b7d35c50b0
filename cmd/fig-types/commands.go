package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	figtypes "github.com/kataras/fig-types"
	"github.com/kataras/fig-types/pkg/docio"
	"github.com/kataras/fig-types/pkg/extractor"
	"github.com/kataras/fig-types/pkg/formatter"
	"github.com/kataras/fig-types/pkg/imager"
	"github.com/kataras/fig-types/pkg/tsgen"

	"github.com/spf13/cobra"
)

var errFailed = errors.New("one or more documents failed")

// check expands the patterns and checks every matching document.
func check(cmd *cobra.Command, patterns []string) ([]figtypes.CheckResult, error) {
	if cmd.Flags().Changed("concurrency") {
		n, _ := cmd.Flags().GetInt("concurrency")
		cfg.Concurrency = n
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}

	paths, err := docio.Expand(patterns, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents match %s", strings.Join(patterns, " "))
	}
	logger().Infof("Checking %d document(s)...", len(paths))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return figtypes.Check(ctx, paths, cfg.Concurrency, allowUnknown), nil
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file|glob>...",
		Short: "Decode documents strictly and check the tree rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := check(cmd, args)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				switch {
				case r.Err != nil:
					failed++
					red.Printf("✗ %s\n", r.Path)
					fmt.Printf("    %v\n", r.Err)
				case len(r.Violations) > 0:
					failed++
					red.Printf("✗ %s\n", r.Path)
					for _, v := range r.Violations {
						fmt.Printf("    %s\n", v)
					}
				default:
					green.Printf("✓ %s\n", r.Path)
				}
				for _, key := range r.Ignored {
					logger().Warnf("%s: ignored unknown field %s", r.Path, key)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailed, failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntP("concurrency", "j", 0, "Documents checked in parallel (default from config, 4)")
	return cmd
}

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <file|glob>...",
		Short: "Print the BLAKE3 fingerprint of each document's canonical encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := check(cmd, args)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					red.Fprintf(os.Stderr, "✗ %s: %v\n", r.Path, r.Err)
					continue
				}
				fmt.Printf("%s  %s\n", r.Fingerprint, r.Path)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailed, failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntP("concurrency", "j", 0, "Documents hashed in parallel (default from config, 4)")
	return cmd
}

func convertCmd() *cobra.Command {
	var (
		indent   string
		compact  bool
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Re-encode a document canonically, optionally zstd-compressed",
		Long: "Decode a document and write its canonical encoding. An output ending in \".zst\" is compressed;\n" +
			"use \"-\" to write to stdout.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			if cmd.Flags().Changed("indent") {
				cfg.Output.Indent = indent
			}
			if compact {
				cfg.Output.Indent = ""
			}
			if cmd.Flags().Changed("compress") {
				cfg.Output.Compress = compress
			}

			doc, err := figtypes.Load(in, allowUnknown)
			if err != nil {
				return err
			}
			for _, key := range doc.Ignored {
				logger().Warnf("Dropped unknown field %s", key)
			}
			if vs := doc.Validate(); len(vs) > 0 {
				for _, v := range vs {
					logger().Errorf("%s", v)
				}
				return fmt.Errorf("%s: %d tree violation(s)", in, len(vs))
			}

			data, err := figtypes.Encode(doc.Value(), cfg.Output.Indent)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}

			if cfg.Output.Compress && !docio.IsCompressed(out) {
				if data, err = docio.Compress(data); err != nil {
					return err
				}
			}
			if err := docio.WriteFile(out, data); err != nil {
				return err
			}

			green.Fprintf(os.Stderr, "✓ %s → %s\n", in, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "  ", "Indentation of the output (default from config)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Write compact JSON")
	cmd.Flags().BoolVarP(&compress, "compress", "z", false, "Compress the output with zstd even without a .zst extension")
	return cmd
}

func outlineCmd() *cobra.Command {
	var nodeIDs string

	cmd := &cobra.Command{
		Use:   "outline <input>",
		Short: "Print the node tree of a document as a Markdown list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := figtypes.Load(args[0], allowUnknown)
			if err != nil {
				return err
			}

			file := doc.AsFile()
			var specs *extractor.DesignSpecs
			if nodeIDs != "" {
				specs = extractor.ExtractNodes(file, figtypes.ParseNodeIDs(nodeIDs), false)
			} else {
				specs = extractor.Extract(file)
			}

			fmt.Print(formatter.Outline(specs.NodeTree))
			return nil
		},
	}

	cmd.Flags().StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to outline instead of the whole tree")
	return cmd
}

// reportFlags are shared by the report and assets commands.
type reportFlags struct {
	nodeIDs            string
	inheritFileContext bool
	imageFormat        string
	imageScales        string
	imageDir           string
	componentTree      bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to extract (optional, extracts specific nodes instead of entire file)")
	cmd.Flags().BoolVarP(&f.inheritFileContext, "inherit-context", "i", false, "Inherit file-level context (colors, styles) when extracting specific nodes")
	cmd.Flags().StringVar(&f.imageFormat, "image-format", "", "Override the nodes' export settings with one format: png, svg, jpg, pdf")
	cmd.Flags().StringVar(&f.imageScales, "image-scales", "1", "Comma-separated scale factors used with --image-format (e.g. \"1,2,3\")")
	cmd.Flags().StringVar(&f.imageDir, "image-dir", "figma-assets", "Output directory for planned assets")
	cmd.Flags().BoolVar(&f.componentTree, "component-tree", false, "Include hierarchical component tree in output")
}

// options merges the configuration file with the flags set on cmd.
func (f *reportFlags) options(cmd *cobra.Command, input string) (figtypes.Options, error) {
	opts := figtypes.Options{
		Input:              input,
		InheritFileContext: cfg.Report.InheritFileContext,
		ImageFormat:        cfg.Assets.Format,
		ImageScales:        cfg.Assets.Scales,
		ImageDir:           cfg.Assets.Dir,
		ComponentTree:      cfg.Report.ComponentTree,
		AllowUnknownFields: allowUnknown,
		Logger:             logger(),
	}

	flags := cmd.Flags()
	if f.nodeIDs != "" {
		opts.NodeIDs = figtypes.ParseNodeIDs(f.nodeIDs)
	}
	if flags.Changed("inherit-context") {
		opts.InheritFileContext = f.inheritFileContext
	}
	if flags.Changed("image-format") {
		switch strings.ToLower(f.imageFormat) {
		case "png", "jpg", "svg", "pdf":
		default:
			return opts, fmt.Errorf("invalid image format %q (must be png, svg, jpg, or pdf)", f.imageFormat)
		}
		opts.ImageFormat = f.imageFormat
	}
	if flags.Changed("image-scales") {
		scales, err := figtypes.ParseScales(f.imageScales)
		if err != nil {
			return opts, err
		}
		opts.ImageScales = scales
	}
	if flags.Changed("image-dir") || opts.ImageDir == "" {
		opts.ImageDir = f.imageDir
	}
	if flags.Changed("component-tree") {
		opts.ComponentTree = f.componentTree
	}
	return opts, nil
}

func reportCmd() *cobra.Command {
	var (
		flags      reportFlags
		outputFile string
		planAssets bool
	)

	cmd := &cobra.Command{
		Use:   "report <input>",
		Short: "Extract design specifications into a Markdown report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args[0])
			if err != nil {
				return err
			}
			opts.PlanAssets = planAssets

			if !quiet {
				cyan.Fprintln(os.Stderr, "\n🎨 Design Specification Report")
				cyan.Fprintln(os.Stderr, "==============================")
			}

			result, err := figtypes.Run(opts)
			if err != nil {
				return err
			}

			if !quiet {
				printSummary(result)
			}

			green.Fprintf(os.Stderr, "\n💾 Writing to %s... ", outputFile)
			if err := os.WriteFile(outputFile, []byte(result.Markdown), 0644); err != nil {
				red.Fprintf(os.Stderr, "✗\n")
				return err
			}
			green.Fprintln(os.Stderr, "✓")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFile, "output", "o", "DESIGN_SPECIFICATIONS.md", "Output markdown file")
	cmd.Flags().BoolVar(&planAssets, "plan-assets", false, "List the assets the document asks to be exported")
	return cmd
}

func printSummary(result *figtypes.Result) {
	specs := result.Specs
	cyan.Fprintln(os.Stderr, "\n📊 Extraction Summary:")
	fmt.Fprintf(os.Stderr, "  • Colors: %d primary, %d background, %d text, %d status\n",
		len(specs.Colors.Primary),
		len(specs.Colors.Background),
		len(specs.Colors.Text),
		len(specs.Colors.Status))

	if specs.Typography.FontFamily != "" {
		fmt.Fprintf(os.Stderr, "  • Font Family: %s\n", specs.Typography.FontFamily)
	}

	fmt.Fprintf(os.Stderr, "  • Font Sizes: %d\n", len(specs.Typography.FontSizes))
	fmt.Fprintf(os.Stderr, "  • Spacing Values: %d\n", len(specs.Spacing.Values))
	fmt.Fprintf(os.Stderr, "  • Border Radii: %d\n", len(specs.Radii.Values))
	fmt.Fprintf(os.Stderr, "  • Shadows: %d\n", len(specs.Shadows))
	fmt.Fprintf(os.Stderr, "  • Shared Styles: %d\n", len(specs.Styles))

	if specs.Layout.HeaderHeight > 0 {
		fmt.Fprintf(os.Stderr, "  • Header Height: %.0fpx\n", specs.Layout.HeaderHeight)
	}
	if specs.Layout.SidebarWidth > 0 {
		fmt.Fprintf(os.Stderr, "  • Sidebar Width: %.0fpx\n", specs.Layout.SidebarWidth)
	}
	if len(specs.ExportedAssets) > 0 {
		fmt.Fprintf(os.Stderr, "  • Planned Assets: %d\n", len(specs.ExportedAssets))
	}
	if len(result.Violations) > 0 {
		red.Fprintf(os.Stderr, "  • Violations: %d\n", len(result.Violations))
	}
	fmt.Fprintf(os.Stderr, "  • Fingerprint: %s\n", result.Fingerprint)
}

func assetsCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "assets <input>",
		Short: "Plan the image assets of a document and write their manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args[0])
			if err != nil {
				return err
			}
			opts.PlanAssets = true

			result, err := figtypes.Run(opts)
			if err != nil {
				return err
			}

			for _, a := range result.Assets.Assets {
				fmt.Printf("%s\t%s\t%s\n", a.NodeID, a.Format, a.Path)
			}

			path, err := imager.WriteManifest(result.Assets, opts.ImageDir)
			if err != nil {
				return err
			}
			green.Fprintf(os.Stderr, "✓ %d asset(s) planned, manifest at %s\n", len(result.Assets.Assets), path)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func tsgenCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "tsgen",
		Short: "Generate the TypeScript declarations of the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				out = cfg.TSGen.Out
			}

			files, err := tsgen.New().Generate()
			if err != nil {
				return err
			}
			if err := tsgen.WriteDir(out, files); err != nil {
				return err
			}

			green.Fprintf(os.Stderr, "✓ %d declaration file(s) written to %s\n", len(files), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "types", "Output directory (default from config)")
	return cmd
}
