package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// MaxUploadSize bounds each uploaded file (reports, documents, archives).
const MaxUploadSize = 25 << 20

// MaxMultipartMemory is handed to gin; larger forms spill to disk.
const MaxMultipartMemory = 32 << 20
