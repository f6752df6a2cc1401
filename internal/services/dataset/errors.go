package dataset

// DatasetError is a custom error type for dataset errors
type DatasetError string

// Error implements the error interface
func (e DatasetError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      DatasetError = "config cannot be nil"
	ErrNilSimulator   DatasetError = "simulator cannot be nil"
	ErrNilRepository  DatasetError = "repository cannot be nil"
	ErrNilClock       DatasetError = "clock cannot be nil"
	ErrNilUUID        DatasetError = "uuid generator cannot be nil"
	ErrNilInput       DatasetError = "input cannot be nil"
	ErrNoDifficulties DatasetError = "at least one difficulty is required"
	ErrNoGames        DatasetError = "games per difficulty must be positive"
)
