package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"pydocgen/internal/config"
	"pydocgen/internal/docstring"
	"pydocgen/internal/doctree"
	"pydocgen/internal/linker"
	"pydocgen/internal/render"
	"pydocgen/internal/storage"
	"pydocgen/internal/walker"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pydocgen",
		Short: "API documentation generator for Python packages",
	}
	dbPath     string
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Default DB path is local to the project
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "pydocgen.db", "Path to the local symbol database (SQLite)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "pydocgen.yaml", "Path to the config file")

	scanCmd.Flags().Bool("exclude-private", false, "Skip underscore-prefixed symbols and modules")

	generateCmd.Flags().StringP("format", "f", "", "Output format: markdown, tsx or json")
	generateCmd.Flags().StringP("out", "o", "", "Output directory")
	generateCmd.Flags().String("github-repo", "", "Repository URL for source links")
	generateCmd.Flags().String("branch", "", "Branch for source links (auto-detected from git when empty)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
}

func initStore() (*storage.SQLiteStore, error) {
	return storage.NewSQLiteStore(dbPath)
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a Python package and store its documented symbols",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		root := cfg.Project.Root
		if len(args) > 0 {
			root = args[0]
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			log.Fatalf("Failed to resolve path: %v", err)
		}

		excludePrivate := cfg.Project.ExcludePrivate
		if cmd.Flags().Changed("exclude-private") {
			excludePrivate, _ = cmd.Flags().GetBool("exclude-private")
		}

		fmt.Printf("📂 Scanning package: %s\n", absRoot)

		store, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		w := walker.New(walker.Options{ExcludePrivate: excludePrivate})

		start := time.Now()
		var symbols []*walker.Symbol
		err = w.WalkPackage(absRoot, func(sym *walker.Symbol) {
			symbols = append(symbols, sym)
		})
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		fmt.Printf("✅ Found %d symbols in %v.\n", len(symbols), time.Since(start))

		fmt.Println("💾 Saving to local database...")
		if err := store.SaveSymbols(context.Background(), symbols); err != nil {
			log.Fatalf("Failed to save symbols: %v", err)
		}

		fmt.Printf("🎉 Scan complete! Database: %s\n", dbPath)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate documentation pages from the stored symbols",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		format := cfg.Output.Format
		if v, _ := cmd.Flags().GetString("format"); v != "" {
			format = v
		}
		outDir := cfg.Output.Dir
		if v, _ := cmd.Flags().GetString("out"); v != "" {
			outDir = v
		}
		link := linker.Config{Repo: cfg.GitHub.Repo, Branch: cfg.GitHub.Branch}
		if v, _ := cmd.Flags().GetString("github-repo"); v != "" {
			link.Repo = v
		}
		if v, _ := cmd.Flags().GetString("branch"); v != "" {
			link.Branch = v
		}
		if link.Repo != "" && link.Branch == "" {
			if branch, err := linker.DetectBranch(cfg.Project.Root); err == nil {
				link.Branch = branch
			}
		}

		renderer, err := render.Get(format)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			log.Fatalf("Database %s not found. Run 'pydocgen scan' first.", dbPath)
		}

		store, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		fmt.Println("🔄 Loading symbols...")
		symbols, err := store.LoadSymbols(ctx)
		if err != nil {
			log.Fatalf("Failed to load symbols: %v", err)
		}
		if len(symbols) == 0 {
			log.Fatalf("No symbols stored in %s. Run 'pydocgen scan' first.", dbPath)
		}

		tree := doctree.Build(symbols)
		opts := render.Options{Link: link}

		fmt.Printf("🚀 Generating %s documentation...\n", renderer.Name())
		start := time.Now()
		written := 0

		for _, m := range tree.Modules() {
			files, err := renderer.RenderModule(m, opts)
			if err != nil {
				log.Fatalf("Failed to render %s: %v", m.Module, err)
			}
			n, err := writeFiles(outDir, files)
			if err != nil {
				log.Fatalf("Failed to write %s: %v", m.Module, err)
			}
			written += n
		}

		index, err := renderer.RenderIndex(tree, opts)
		if err != nil {
			log.Fatalf("Failed to render index: %v", err)
		}
		n, err := writeFiles(outDir, index)
		if err != nil {
			log.Fatalf("Failed to write index: %v", err)
		}
		written += n

		fmt.Printf("✅ Wrote %d files to '%s' in %v.\n", written, outDir, time.Since(start))
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a single docstring and print the structured record as JSON",
	Long:  "Reads a raw docstring from the given file, or from stdin when no file is passed.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var raw []byte
		var err error
		if len(args) > 0 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			log.Fatalf("Failed to read docstring: %v", err)
		}

		doc := docstring.Parse(string(raw))
		blob, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Fatalf("Failed to serialize: %v", err)
		}
		fmt.Println(string(blob))
	},
}

// writeFiles writes rendered output under dir, creating directories as the
// renderer's paths require.
func writeFiles(dir string, files []render.OutputFile) (int, error) {
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return 0, err
		}
		if err := os.WriteFile(target, f.Data, 0644); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}
