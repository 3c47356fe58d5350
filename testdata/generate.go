// Generates the parquet fixture used for manual testing of the
// reader package. Run from this directory: go run generate.go
package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type sample struct {
	StudyID    string  `parquet:"Study ID"`
	SampleName string  `parquet:"Sample Name"`
	Secretor   string  `parquet:"Secretor"`
	TwoFL      float64 `parquet:"2'FL %"`
	LNnT       float64 `parquet:"LNnT %"`
	ThreeSL    float64 `parquet:"3'SL %"`
}

func main() {
	samples := []sample{
		{StudyID: "S1", SampleName: "S1-001", Secretor: "1", TwoFL: 22.1, LNnT: 7.4, ThreeSL: 1.9},
		{StudyID: "S1", SampleName: "S1-002", Secretor: "0", TwoFL: 0.4, LNnT: 9.8, ThreeSL: 2.3},
		{StudyID: "S2", SampleName: "S2-001", Secretor: "1.0", TwoFL: 18.7, LNnT: 6.1, ThreeSL: 2.0},
		{StudyID: "S2", SampleName: "S2-002", Secretor: "", TwoFL: 20.2, LNnT: 5.5, ThreeSL: 1.7},
		{StudyID: "S3", SampleName: "S3-001", Secretor: "x", TwoFL: 16.9, LNnT: 8.2, ThreeSL: 2.6},
	}

	file, err := os.Create("samples.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[sample](file)
	defer writer.Close()

	if _, err := writer.Write(samples); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated samples.parquet with 5 samples")
}
