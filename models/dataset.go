package models

type DatasetRow struct {
	BuildingType      string  `json:"building_type"`
	SquareFootage     float64 `json:"square_footage"`
	NumberOfOccupants float64 `json:"number_of_occupants"`
	AppliancesUsed    float64 `json:"appliances_used"`
	EnergyConsumption float64 `json:"energy_consumption"`
}

type DatasetPage struct {
	Data  []DatasetRow `json:"data"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Pages int          `json:"pages"`
}

// PageCount computes ceil(total/limit), the page count the backend is expected
// to report.
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ClampPage clamps p into [1, Pages]. A page count below one behaves as a
// single page.
func (d DatasetPage) ClampPage(p int) int {
	pages := d.Pages
	if pages < 1 {
		pages = 1
	}
	if p < 1 {
		return 1
	}
	if p > pages {
		return pages
	}
	return p
}

// FilterByType returns the rows whose building type matches exactly. An empty
// filter returns all rows. Only the loaded page is filtered; pagination
// metadata still describes the unfiltered dataset.
func (d DatasetPage) FilterByType(buildingType string) []DatasetRow {
	if buildingType == "" {
		return d.Data
	}
	filtered := make([]DatasetRow, 0, len(d.Data))
	for _, row := range d.Data {
		if row.BuildingType == buildingType {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
