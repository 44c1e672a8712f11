package domain

type CatalogImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

type GeocodingMessage struct {
	Address string `json:"address"`
}
