package database

// TableName is the single table this service queries.
const TableName = "JOBORDER"

// NumericTextColumns lists the JOBORDER columns that hold numeric values but
// are stored as VARCHAR. The sanitizer wraps references to them in CAST
// expressions so aggregation and comparison work.
var NumericTextColumns = []string{
	"PRD_QTY",
	"QTY_BOM",
	"QTY_REQ",
	"QTY_RECEIVED",
	"PD_REQ",
	"PD01",
	"PD02",
	"PD04",
	"PD09",
	"WIP_QTY",
	"REQ_PART",
	"STOCK_MAIN",
	"STOCK_NG",
	"STOCK_UNPACK",
	"STOCK_SAFETY",
}

// PromptSchema is the table description fed to the model. The quantity
// columns are described by meaning, not by their storage type; the sanitizer
// deals with the VARCHAR storage after generation.
const PromptSchema = `Table: JOBORDER

Columns:
- MAT_TYPE (VARCHAR) - material type (e.g., 'Local', 'SKD')
- MAT_GROUP (VARCHAR) - material group (e.g., 'Foam', 'Accessory/fitting')
- SAP_ID (VARCHAR) - SAP material code (e.g., '10030059', '20004212')
- PART_NO (VARCHAR) - part number (e.g., '16320300000732')
- PART_NAME (VARCHAR) - part name (e.g., '16320300000732 Top foam')
- PRD_QTY (numeric) - production quantity
- QTY_BOM (numeric) - BOM quantity
- QTY_REQ (numeric) - required quantity
- QTY_RECEIVED (numeric) - quantity already received
- PD_REQ (numeric) - production requested quantity
- PD01, PD02, PD04, PD09 (numeric) - planned dispatch quantities by department
- WIP_QTY (numeric) - work in progress quantity
- REQ_PART (numeric) - requested part quantity
- STOCK_MAIN (numeric) - main stock
- STOCK_NG (numeric) - defect stock
- STOCK_UNPACK (numeric) - unpacked stock
- STOCK_SAFETY (numeric) - safety stock

Sample data examples:
- Local Foam parts: Top foam, Volute shell with high STOCK_MAIN quantities
- SKD Accessory/fitting: ADHESIVE, service cards, trademarks with STOCK_UNPACK quantities
`
