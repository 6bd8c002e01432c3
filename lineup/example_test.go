package lineup_test

import (
	"fmt"
	"strings"

	"github.com/champlab/champnet/builder"
	"github.com/champlab/champnet/lineup"
)

// ExampleAnalyzer builds a tiny three-roster graph and asks for the best
// duo overall and the best duo containing a given player.
func ExampleAnalyzer() {
	records := []builder.Record{
		{GroupID: "2022|ONE", Member: "Ann"},
		{GroupID: "2022|ONE", Member: "Bob"},
		{GroupID: "2023|ONE", Member: "Ann"},
		{GroupID: "2023|ONE", Member: "Bob"},
		{GroupID: "2024|TWO", Member: "Ann"},
		{GroupID: "2024|TWO", Member: "Cat"},
	}

	g, err := builder.Build(records)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	a, err := lineup.NewAnalyzer(g, 2)
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	best, _ := a.BestTeam()
	fmt.Printf("best duo: %s (score %d)\n", strings.Join(best.Lineup, " + "), best.Score)

	withCat, _ := a.BestTeamWith("Cat")
	fmt.Printf("best duo with Cat: %s (score %d)\n", strings.Join(withCat.Lineup, " + "), withCat.Score)

	// Output:
	// best duo: Ann + Bob (score 7)
	// best duo with Cat: Ann + Cat (score 5)
}
