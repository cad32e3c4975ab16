package interfaces

import "applicant-corrector/domain/entities"

// DatasetLoader reads correction rows from an input dataset in file order.
type DatasetLoader interface {
	// Load reads the dataset at path and returns its rows. The run mode
	// determines which columns must be present. Column values are text;
	// the occupation key is never parsed numerically.
	Load(path string, mode entities.RunMode) ([]entities.CorrectionRow, error)
}
