package errors

import "fmt"

var (
	ErrUnknownAnalyzer    = fmt.Errorf("unknown analyzer kind")
	ErrInvalidNGramRange  = fmt.Errorf("invalid ngram range")
	ErrInvalidTokenRegexp = fmt.Errorf("invalid token pattern")
	ErrUnknownAccentStrip = fmt.Errorf("unknown accent stripping mode")
	ErrInvalidOptions     = fmt.Errorf("invalid vectorizer options")
	ErrWeightsLength      = fmt.Errorf("weights length does not match the number of features")
	ErrNoDocuments        = fmt.Errorf("no documents have been found")
	ErrUnknownSplitMode   = fmt.Errorf("unknown split mode")
	ErrUnknownCommand     = fmt.Errorf("unknown command")
)
