package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/usathyan/KG/pkg/graph"
	"github.com/usathyan/KG/pkg/graph/ontology"
	"github.com/usathyan/KG/pkg/graph/processors"
	"github.com/usathyan/KG/pkg/graph/storage"
)

var (
	maxQuestions  int
	outputFormat  string
	outputPath    string
	jsonOutput    string
	relationsPath string
	groupsPath    string
	threshold     float64
	useNeo4j      bool
	logLevel      string
	envFile       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kg",
		Short:         "Generate RDF knowledge graphs from documents",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	generateCmd := &cobra.Command{
		Use:   "generate <input-file>",
		Short: "Generate a knowledge graph from a document",
		Long: `Generate extracts named entities and known relations from a document,
normalizes relation names against the ontology vocabulary, derives
competency questions, and writes the resulting graph as Turtle next to the
input file.`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	generateCmd.Flags().IntVar(&maxQuestions, "max-questions", 3, "Maximum number of competency questions to generate")
	generateCmd.Flags().StringVar(&outputFormat, "output-format", "turtle", "Output format for the knowledge graph (turtle)")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "Output file path (default: <input-basename>.ttl)")
	generateCmd.Flags().StringVar(&jsonOutput, "json-output", "", "Also store the generation result as JSON at this path")
	generateCmd.Flags().StringVar(&relationsPath, "relations", "", "Path to a custom-relations JSON file")
	generateCmd.Flags().StringVar(&groupsPath, "groups", "", "Path to an equivalence-groups JSON file")
	generateCmd.Flags().Float64Var(&threshold, "similarity-threshold", ontology.DefaultThreshold, "Fuzzy similarity threshold for relation matching")
	generateCmd.Flags().BoolVar(&useNeo4j, "neo4j", false, "Also push the result to Neo4j (NEO4J_URI/NEO4J_USERNAME/NEO4J_PASSWORD)")
	generateCmd.Flags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	generateCmd.Flags().StringVar(&envFile, "env", ".env", "Path to environment file")

	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		logger.WithError(err).Warnf("Could not load env file %s", envFile)
	}

	// Reject unknown formats before any processing runs.
	format := graph.Format(strings.ToLower(outputFormat))
	if _, err := graph.NewWriter(format); err != nil {
		return err
	}

	inputPath := args[0]
	ctx := cmd.Context()

	text, err := processors.ExtractText(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("could not extract text from %s: %v", inputPath, err)
	}

	groups := ontology.DefaultGroups()
	if groupsPath != "" {
		loaded, err := ontology.LoadGroups(groupsPath)
		if err != nil {
			logger.WithError(err).Warn("Falling back to built-in equivalence groups")
		} else {
			groups = loaded
		}
	}

	generator := graph.NewGenerator(
		processors.NewEntityObserver(),
		processors.NewRelationExtractor(relationsPath),
		ontology.NewMatcher(threshold, groups),
		processors.NewQuestionGenerator(),
	)

	result, err := generator.Generate(ctx, text, graph.Options{
		MaxQuestions: maxQuestions,
		Format:       format,
	})
	if err != nil {
		return fmt.Errorf("error generating knowledge graph: %v", err)
	}

	output := outputPath
	if output == "" {
		output = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".ttl"
	}
	if err := os.WriteFile(output, []byte(result.Serialized), 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", output, err)
	}
	logger.Infof("Knowledge graph saved to %s", output)

	if jsonOutput != "" {
		store := storage.NewJSONResultStore(jsonOutput)
		if err := store.Store(ctx, result); err != nil {
			logger.WithError(err).Error("Failed to store JSON result")
		} else {
			logger.Infof("Generation result saved to %s", jsonOutput)
		}
	}

	if useNeo4j {
		if err := pushToNeo4j(cmd, result, logger); err != nil {
			logger.WithError(err).Error("Failed to push result to Neo4j")
		}
	}

	return nil
}

// pushToNeo4j is best-effort: failures are reported but never undo the
// Turtle output already written.
func pushToNeo4j(cmd *cobra.Command, result *graph.Result, logger *logrus.Logger) error {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		uri = "bolt://localhost:7687"
	}

	store, err := storage.NewNeo4jStore(uri, os.Getenv("NEO4J_USERNAME"), os.Getenv("NEO4J_PASSWORD"))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Store(cmd.Context(), result); err != nil {
		return err
	}
	logger.Infof("Result pushed to Neo4j at %s", uri)
	return nil
}
