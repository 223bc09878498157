package main

// #region imports
import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/calibration"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/store"
)

// #endregion

// #region main
func main() {
	dbPath := envOr("TUTOR_DB", "tutor.db")
	userID := envOr("TUTOR_USER", "local")
	patternID := envOr("TUTOR_PATTERN", "two_pointers")

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	fmt.Println("Pattern Tutor calibration")
	fmt.Printf("  user: %s | pattern: %s\n\n", userID, patternID)

	scanner := bufio.NewScanner(os.Stdin)
	responses := make(map[string]string)

	for _, q := range calibration.Questions {
		fmt.Println(q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt.Text)
		}

		opt, ok := readChoice(scanner, len(q.Options))
		if !ok {
			fmt.Println("\naborted")
			return
		}
		chosen := q.Options[opt-1]
		responses[q.ID] = chosen.ID
		fmt.Printf("  → %s\n\n", chosen.FollowUp)
	}

	result := calibration.Score(responses, calibration.Questions)

	fmt.Printf("Score: %d → %s\n\n", result.TotalScore, persona.Lookup(result.Persona).DisplayName)
	fmt.Println(persona.Description(result.Persona))
	fmt.Println()
	for _, b := range persona.GuidanceBullets(result.Persona) {
		fmt.Printf("  - %s\n", b)
	}

	id, err := st.SaveCalibration(userID, patternID, result)
	if err != nil {
		log.Fatalf("failed to save calibration: %v", err)
	}
	fmt.Printf("\nsaved calibration %s\n", id)
}

// #endregion main

// #region input
func readChoice(scanner *bufio.Scanner, max int) (int, bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "quit" || text == "exit" {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 1 && n <= max {
			return n, true
		}
		fmt.Printf("enter a number between 1 and %d\n", max)
	}
}

// #endregion input

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
