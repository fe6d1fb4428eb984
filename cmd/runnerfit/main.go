package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/aidoc"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/config"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/gemini"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/plan"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/report"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/store"
)

const version = "RunnerFit v1.0.0"

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		var incomplete *plan.IncompleteProfileError
		if errors.As(err, &incomplete) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		log.Fatalf("Error: %v", err)
	}
}

func runCLI(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	profilePath := cfg.Profile.Path
	outputDir := cfg.Profile.OutputDir
	mode := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "version", "--version", "-v":
			fmt.Println(version)
			return nil
		case "--load":
			if i+1 >= len(args) {
				return fmt.Errorf("--load requiere una ruta de archivo")
			}
			i++
			profilePath = args[i]
		case "--output-dir":
			if i+1 >= len(args) {
				return fmt.Errorf("--output-dir requiere un directorio")
			}
			i++
			outputDir = args[i]
		case "--generate-outputs", "--generate-plan", "template", "demo", "info":
			if mode != "" {
				return fmt.Errorf("solo un modo a la vez: %s y %s", mode, args[i])
			}
			mode = args[i]
		default:
			return fmt.Errorf("unknown command: %s", args[i])
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	st := store.New(profilePath, logger)
	reports := report.NewGenerator(outputDir, logger)

	switch mode {
	case "template":
		return st.WriteTemplate("")
	case "demo":
		return runDemo(st, reports)
	case "info":
		return runInfo(st)
	case "--generate-outputs":
		return runOutputs(st, reports)
	case "--generate-plan":
		return runPlan(cfg, st, reports, logger)
	case "":
		return runInfo(st)
	}
	return nil
}

func printHelp() {
	fmt.Println("Usage: runnerfit [options] [mode]")
	fmt.Println("Modes:")
	fmt.Println("  info                 Show stored profile status (default)")
	fmt.Println("  --generate-outputs   Write the athlete sheet and AI profile JSON")
	fmt.Println("  --generate-plan      Request a training plan (requires complete profile)")
	fmt.Println("  template             Write an empty profile template for manual editing")
	fmt.Println("  demo                 Save a sample profile and generate its outputs")
	fmt.Println("Options:")
	fmt.Println("  --load <path>        Profile file to use (default athlete_profile.json)")
	fmt.Println("  --output-dir <dir>   Output directory (default outputs)")
	fmt.Println("  --help, -h           Show this help message")
	fmt.Println("  --version, -v        Show version")
	fmt.Println("Environment:")
	fmt.Println("  GEMINI_API_KEY       API key for plan generation")
	fmt.Println("  GEMINI_MODEL         Model override (default gemini-2.5-pro)")
	fmt.Println("  PROFILE_PATH         Default profile file path")
	fmt.Println("  OUTPUT_DIR           Default output directory")
}

func runInfo(st *store.Store) error {
	info := st.ProbeInfo()
	if !info.Exists {
		fmt.Printf("No hay perfil en %s. Usa 'template' para crear una plantilla.\n", st.Path())
		return nil
	}
	p := st.Load()
	score := aidoc.Score(p)
	fmt.Printf("Perfil: %s (%s)\n", info.AthleteName, info.Path)
	fmt.Printf("Modificado: %s, %d bytes\n", info.Modified.Format("2006-01-02 15:04:05"), info.SizeBytes)
	fmt.Printf("Completitud: %.1f%% — %s\n", score.Percentage, score.ReadinessLevel)
	if missing := p.MissingFields(); len(missing) > 0 {
		fmt.Println("Campos pendientes para generar plan:")
		for _, f := range missing {
			fmt.Printf("  - %s\n", f)
		}
	} else {
		fmt.Println("El perfil está completo para generar un plan.")
	}
	return nil
}

func runOutputs(st *store.Store, reports *report.Generator) error {
	p := st.Load()
	sheet, jsonPath, err := reports.ProfileOutputs(p)
	if err != nil {
		return err
	}
	fmt.Printf("Ficha técnica: %s\n", sheet)
	fmt.Printf("Perfil optimizado para IA: %s\n", jsonPath)
	return nil
}

func runPlan(cfg *config.Config, st *store.Store, reports *report.Generator, logger zerolog.Logger) error {
	if !cfg.HasGemini() {
		return fmt.Errorf("GEMINI_API_KEY no configurada")
	}
	client, err := gemini.New(cfg.Gemini.APIKey, gemini.WithModel(cfg.Gemini.Model))
	if err != nil {
		return err
	}

	p := st.Load()
	fmt.Printf("Conectando con el entrenador de IA (modelo %s)...\n", client.Model())
	result, err := plan.NewGenerator(client, logger).Generate(context.Background(), p)
	if err != nil {
		return err
	}

	mdPath, jsonPath, err := reports.PlanOutputs(p.Name, result)
	if err != nil {
		return err
	}
	fmt.Printf("Plan generado (%d sesiones)\n", len(result.Sessions))
	fmt.Printf("Informe: %s\n", mdPath)
	fmt.Printf("Plan estructurado: %s\n", jsonPath)
	return nil
}

func runDemo(st *store.Store, reports *report.Generator) error {
	p := profile.Sample()
	if st.Exists() {
		if backup, err := st.Backup(st.Load()); err == nil {
			fmt.Printf("Perfil existente respaldado en %s\n", backup)
		}
	}
	if err := st.Save(p); err != nil {
		return err
	}
	fmt.Printf("Perfil de ejemplo guardado en %s\n", st.Path())
	return runOutputs(st, reports)
}
