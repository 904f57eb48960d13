package main

import (
	"hashlens/analysis"
	"hashlens/corpus"
	"hashlens/hashing"
	"strings"

	"github.com/samber/lo"
)

type Config struct {
	NFeatures       int    `env:"UNHASH_N_FEATURES,default=1048576"`
	Binary          bool   `env:"UNHASH_BINARY,default=false"`
	AlternateSign   bool   `env:"UNHASH_ALTERNATE_SIGN,default=true"`
	NonNegative     bool   `env:"UNHASH_NON_NEGATIVE,default=false"`
	Norm            string `env:"UNHASH_NORM,default=l2"`
	Analyzer        string `env:"UNHASH_ANALYZER,default=word"`
	Lowercase       bool   `env:"UNHASH_LOWERCASE,default=true"`
	StripAccents    string `env:"UNHASH_STRIP_ACCENTS"`
	TokenPattern    string `env:"UNHASH_TOKEN_PATTERN"`
	NGramMin        int    `env:"UNHASH_NGRAM_MIN,default=1"`
	NGramMax        int    `env:"UNHASH_NGRAM_MAX,default=1"`
	StopWords       string `env:"UNHASH_STOP_WORDS"`
	Split           string `env:"UNHASH_SPLIT,default=line"`
	UnknownTemplate string `env:"UNHASH_UNKNOWN_TEMPLATE,default=FEATURE[%d]"`
	MaxNames        int    `env:"UNHASH_MAX_NAMES,default=3"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
}

func (c Config) HashingOptions() hashing.Options {
	stopWords := lo.Compact(lo.Map(strings.Split(c.StopWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
	return hashing.Options{
		NFeatures:     c.NFeatures,
		Binary:        c.Binary,
		Norm:          hashing.Norm(c.Norm),
		AlternateSign: c.AlternateSign,
		NonNegative:   c.NonNegative,
		Analysis: analysis.Options{
			Kind:         analysis.Kind(c.Analyzer),
			Lowercase:    c.Lowercase,
			StripAccents: analysis.AccentStrip(c.StripAccents),
			TokenPattern: c.TokenPattern,
			NGramRange:   [2]int{c.NGramMin, c.NGramMax},
			StopWords:    stopWords,
		},
	}
}

func (c Config) SplitMode() corpus.SplitMode {
	return corpus.SplitMode(c.Split)
}
