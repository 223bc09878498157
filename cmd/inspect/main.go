package main

// #region imports
import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/store"
)

// #endregion

// #region main
func main() {
	dbPath := flag.String("db", envOr("TUTOR_DB", "tutor.db"), "path to the tutor database")
	limit := flag.Int("limit", 20, "number of interaction rows to show")
	user := flag.String("user", "", "show monthly spend for this user")
	flag.Parse()

	st, err := store.New(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	if *user != "" {
		spend, err := st.MonthlySpend(*user)
		if err != nil {
			log.Fatalf("failed to read spend: %v", err)
		}
		fmt.Printf("monthly spend for %s: $%.6f\n", *user, spend)
	}

	records, err := st.RecentInteractions(*limit)
	if err != nil {
		log.Fatalf("failed to read interactions: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("no interactions recorded")
		return
	}

	fmt.Printf("%-20s %-10s %-8s %-5s %-20s %8s %8s %10s %8s %-8s\n",
		"created", "user", "kind", "step", "persona", "in_tok", "out_tok", "cost", "lat_ms", "error")
	for _, r := range records {
		errKind := r.ErrorKind
		if errKind == "" {
			errKind = "-"
		}
		fmt.Printf("%-20s %-10s %-8s %-5d %-20s %8d %8d %10.6f %8d %-8s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.UserID, r.Kind, r.StepID, r.Persona,
			r.InputTokens, r.OutputTokens, r.CostEstimate, r.LatencyMS, errKind)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
