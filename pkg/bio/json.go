package bio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
)

/*
WriteJSONForest takes an io.Writer and a grove.Forest and prints
a JSON representation of the forest onto the writer. It returns
an error if serialization or printing fails, nil otherwise.
*/
func WriteJSONForest(w io.Writer, forest *grove.Forest) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(forest)
	if err != nil {
		return errors.Wrap(err, "serializing forest as JSON")
	}
	return nil
}

/*
WriteJSONForestToFile takes a filepath string and a grove.Forest
and tries to create a file on the given filepath and later use
WriteJSONForest to write a JSON representation of the forest on it.
It returns an error if the file cannot be opened for writing or
serialization or printing fails, nil otherwise.
*/
func WriteJSONForestToFile(filepath string, forest *grove.Forest) error {
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filepath)
	}
	defer f.Close()
	return WriteJSONForest(f, forest)
}

// WriteTextForest prints the ASCII rendering of every tree in the forest.
func WriteTextForest(w io.Writer, forest *grove.Forest) error {
	_, err := io.WriteString(w, forest.String())
	if err != nil {
		return errors.Wrap(err, "printing forest")
	}
	return nil
}
