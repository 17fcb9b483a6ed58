package kata

// CatalogSchemaPath is the JSON schema every imported catalog must satisfy
const CatalogSchemaPath = "configs/schemas/katas.schema.json"

// Log messages
const (
	LogMsgSubmissionCreated = "Submission received"
	LogMsgCatalogImported   = "Kata catalog imported"
	LogMsgKataImported      = "Imported kata"
	LogMsgPublishFailed     = "Failed to publish submission event"
)
