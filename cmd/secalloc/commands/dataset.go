package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/region"
)

// datasetFile is the on-disk JSON shape. Investment is the optional
// budget-proxy series; regions without one fall back to the lagged-rate
// default proxy.
type datasetFile struct {
	Regions []struct {
		Code       string             `json:"code"`
		Name       string             `json:"name"`
		Group      string             `json:"group"`
		Population int64              `json:"population"`
		Deaths     float64            `json:"deaths"`
		Budget     float64            `json:"budget"`
		History    []region.RatePoint `json:"history"`
		Investment []region.RatePoint `json:"investment,omitempty"`
	} `json:"regions"`
}

// loadDataset reads the --data file into a dataset plus the proxy source
// the elasticity fit should use.
func loadDataset() (*region.Dataset, elasticity.ProxySource, error) {
	if dataFile == "" {
		return nil, nil, fmt.Errorf("no dataset: pass --data or set SECALLOC_DATA")
	}
	raw, err := os.ReadFile(dataFile)
	if err != nil {
		return nil, nil, err
	}

	var f datasetFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", dataFile, err)
	}

	regions := make([]region.Region, 0, len(f.Regions))
	proxies := make(map[string][]region.RatePoint)
	for _, e := range f.Regions {
		regions = append(regions, region.Region{
			Code:          e.Code,
			Name:          e.Name,
			Group:         e.Group,
			Population:    e.Population,
			CurrentDeaths: e.Deaths,
			CurrentBudget: e.Budget,
			History:       e.History,
		})
		if len(e.Investment) > 0 {
			proxies[e.Code] = e.Investment
		}
	}

	ds, err := region.NewDataset(regions)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", dataFile, err)
	}
	log.Debug("dataset loaded", "file", dataFile, "regions", ds.Len(), "proxies", len(proxies))

	if len(proxies) == 0 {
		return ds, elasticity.TrendProxy{}, nil
	}
	return ds, mixedProxy{static: proxies}, nil
}

// mixedProxy serves explicit investment series where present and the
// lagged-rate default elsewhere.
type mixedProxy struct {
	static map[string][]region.RatePoint
}

func (m mixedProxy) Series(r region.Region) []region.RatePoint {
	if s, ok := m.static[r.Code]; ok {
		return s
	}
	return elasticity.TrendProxy{}.Series(r)
}

// fitElasticities is the shared front half of most commands.
func fitElasticities(ds *region.Dataset, src elasticity.ProxySource) (map[string]elasticity.Result, error) {
	el, err := elasticity.EstimateAll(ds, src, elasticity.Options{})
	if err != nil {
		return nil, fmt.Errorf("elasticity fit: %w", err)
	}
	return el, nil
}

// printJSON renders any result structure to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
