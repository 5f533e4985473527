package embedding

// TaskTypeDocument is the task hint passed when embedding stored documents.
const TaskTypeDocument = "RETRIEVAL_DOCUMENT"

// EmbeddingProvider generates text embeddings. GenerateBatch encodes all
// texts in a single provider call so one ingestion event costs one round
// trip regardless of how many documents it carries.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
	GenerateBatch(texts []string, taskType string) ([][]float32, error)
}

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}
