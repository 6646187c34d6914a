package kvstore

// Fixed keys of the persisted state. Each collection lives as one
// JSON-encoded sequence under its key; currentUser holds a single
// user object while a session is active.
const (
	KeyUsers       = "users"
	KeyProjects    = "projects"
	KeyTasks       = "tasks"
	KeyCurrentUser = "currentUser"
)

// Store is a minimal key-value store over raw bytes. Get reports
// absence via its second return rather than an error. Writes replace
// the whole value (last writer wins); there is no transaction or
// concurrent-writer protocol, the application is single-caller.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
