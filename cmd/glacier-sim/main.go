// glacier-sim runs a single melt simulation from the command line and
// prints the result as JSON. Useful for sanity-checking the formulas
// without a running server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pamirlabs/glacier-atlas/internal/catalog"
	"github.com/pamirlabs/glacier-atlas/internal/models"
	"github.com/pamirlabs/glacier-atlas/internal/simulation"
)

func main() {
	var (
		glacierID = flag.String("glacier", "fedchenko", "glacier id from the catalog")
		stress    = flag.String("stress", "warming", "stress type: rockfall, seismic or warming")
		intensity = flag.Float64("intensity", 100, "intensity percentage [10,100]")
		tempDelta = flag.Float64("temp", 10, "temperature delta [1,10]")
		list      = flag.Bool("list", false, "list catalog glaciers and exit")
	)
	flag.Parse()

	cat := catalog.New()

	if *list {
		for _, g := range cat.All() {
			fmt.Printf("%-18s %-36s %8.1f km2 %7.1f km3  %s\n",
				g.ID, g.Name, g.AreaKm2, g.VolumeKm3, g.Status)
		}
		return
	}

	st := models.StressType(*stress)
	if !st.Valid() {
		fmt.Fprintf(os.Stderr, "unknown stress type %q, want rockfall, seismic or warming\n", *stress)
		os.Exit(1)
	}

	g := cat.ByID(*glacierID)
	result, err := simulation.Compute(g, models.SimulationInput{
		GlacierID:        *glacierID,
		Stress:           st,
		Intensity:        *intensity,
		TemperatureDelta: *tempDelta,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "encoding failed: %v\n", err)
		os.Exit(1)
	}
}
