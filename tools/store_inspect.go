package main

import (
	"flag"
	"hashlens/internal"
	"hashlens/repositories"
	"log"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	what := flag.String("what", "terms", "terms or runs")
	limit := flag.Int("limit", 50, "rows to print, 0 for all")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString("ERROR")
	switch *what {
	case "terms":
		counts, err := repositories.NewTermCountRepository(db, logger).Load()
		if err != nil {
			log.Fatal(err)
		}
		table := internal.NewTable(os.Stdout, []string{"Rank", "Term", "Count"})
		for rank, tc := range counts {
			if *limit > 0 && rank >= *limit {
				break
			}
			table.Append([]string{strconv.Itoa(rank), tc.Term, strconv.Itoa(tc.Count)})
		}
		table.Render()
	case "runs":
		var atMost *int
		if *limit > 0 {
			atMost = limit
		}
		runs, err := repositories.NewFitRunRepository(db, logger).List(atMost)
		if err != nil {
			log.Fatal(err)
		}
		table := internal.NewTable(os.Stdout, []string{"Run", "At", "Documents", "Terms", "Features", "Resumed"})
		for _, run := range runs {
			table.Append([]string{
				run.ID.String(),
				run.At.Format("2006-01-02 15:04:05.000"),
				strconv.Itoa(run.Documents),
				strconv.Itoa(run.Terms),
				strconv.Itoa(run.NFeatures),
				strconv.FormatBool(run.Resumed),
			})
		}
		table.Render()
	default:
		log.Fatalf("unknown -what %q, expected terms or runs", *what)
	}
}
