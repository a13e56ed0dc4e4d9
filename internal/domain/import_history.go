package domain

import "time"

type ImportMode string

const (
	ImportModeAppend    ImportMode = "append"
	ImportModeOverwrite ImportMode = "overwrite"
	ImportModeAPISync   ImportMode = "api-sync"
)

func (m ImportMode) IsValid() bool {
	switch m {
	case ImportModeAppend, ImportModeOverwrite, ImportModeAPISync:
		return true
	}
	return false
}

// DataSource identifica a origem das linhas de uma importação
type DataSource string

const (
	DataSourceNextEngineCSV DataSource = "NE"
	DataSourceAmazonCSV     DataSource = "Amazon"
	DataSourceAPI           DataSource = "API"
)

const ImportTypeSales = "sales"

type ImportHistory struct {
	ID               int64      `json:"id"`
	ImportType       string     `json:"import_type"`
	TargetYm         string     `json:"target_ym"`
	ImportMode       ImportMode `json:"import_mode"`
	DataSource       DataSource `json:"data_source"`
	Comment          string     `json:"comment"`
	RecordCount      int        `json:"record_count"`
	SalesChannelID   int        `json:"sales_channel_id"`
	ImportedByUserID int        `json:"imported_by_user_id"`
	ImportedAt       time.Time  `json:"imported_at"`
}

type ImportHistoryFilters struct {
	TargetYm       string
	SalesChannelID *int
	Limit          uint64
}
