package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	configFlag := flag.String("config", "", "Path to the configuration file")
	flag.StringVar(configFlag, "c", "", "Path to the configuration file (shorthand)")
	dryRun := flag.Bool("dry-run", false, "Write marker files instead of moving anything")
	noInteract := flag.Bool("no-interact", false, "Never prompt; skip ambiguous titles")
	noCache := flag.Bool("no-cache", false, "Bypass the search result cache")

	flag.Parse()

	if flag.NArg() < 3 {
		help()
		os.Exit(1)
	}

	var kind MediaKind
	switch mode := flag.Arg(0); mode {
	case "movie":
		kind = Movie
	case "show":
		kind = Episode
	default:
		fmt.Printf("Unknown mode: %s\n", mode)
		help()
		os.Exit(1)
	}

	libraryRoot := Path(flag.Arg(1))
	if !libraryRoot.isDirectory() {
		fmt.Printf("Not a directory: %s\n", libraryRoot)
		os.Exit(1)
	}
	outputRoot := libraryRoot.removingLastPathComponent().appendingPathComponent(flag.Arg(2))

	var configFile Path
	if *configFlag != "" {
		configFile = Path(*configFlag)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		panic(err)
	}
	if config.TMDbApiKey == "" {
		fmt.Println("No TMDB API key found. Provide it via config, TMDB_API_KEY or a .tmdb-api-key file.")
		os.Exit(1)
	}

	Logf("📂 library: %s", libraryRoot)
	Logf("📦 output: %s", outputRoot)
	if *dryRun {
		Log("🧪 dry run: marker files only, nothing will be moved")
	}
	if !*noInteract {
		if !confirm("OK? (Y/n, default: Y): ") {
			os.Exit(0)
		}
	}

	var cache *searchCache
	if !*noCache {
		cache, err = openSearchCache(config.CacheDB)
		if err != nil {
			panic(err)
		}
		defer cache.Close()
	}

	resolver := &Resolver{Search: NewTMDbAPI(config.TMDbApiKey, cache)}
	if !*noInteract {
		resolver.Choose = promptChooser
	}

	files, err := collectLibraryFiles(libraryRoot)
	if err != nil {
		panic(err)
	}

	result, err := runEngine(files, kind, resolver)
	if err != nil {
		panic(err)
	}
	result.report()

	if err := applyPlan(result, libraryRoot, outputRoot, *dryRun); err != nil {
		panic(err)
	}
	Log("✅ done")
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y" || answer == "yes"
}

// promptChooser asks the operator to pick a catalog entry when the
// search returned several plausible ones. Returning false skips the
// title for this run.
func promptChooser(unit MediaUnit, candidates []Candidate, scores []float64) (int, bool) {
	fmt.Printf("Multiple matches for %s:\n", unit.describe())
	for i, candidate := range candidates {
		year := ""
		if candidate.Year != 0 {
			year = fmt.Sprintf(" (%d)", candidate.Year)
		}
		fmt.Printf("  %d. %s%s [%s] %.2f\n", i+1, candidate.DisplayName, year, candidate.ID, scores[i])
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Select a number (0 to skip): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > len(candidates) {
			fmt.Println("Invalid selection")
			continue
		}
		if choice == 0 {
			return 0, false
		}
		return choice - 1, true
	}
}

func help() {
	fmt.Printf("Usage: %s [flags] <movie|show> <library-dir> <output-name>\n", os.Args[0])
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
