package config

import (
	"time"

	"github.com/Alfex4936/mapsrpc/internal/record"
	"github.com/Alfex4936/mapsrpc/internal/value"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Decoder DecoderConfig `yaml:"decoder"`
	Fetch   FetchConfig   `yaml:"fetch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"          env:"SERVER_HOST"          env-default:"0.0.0.0"`
	Port         int           `yaml:"port"          env:"SERVER_PORT"          env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"16777216"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DecoderConfig holds the positional layout of place and review records.
// Paths are slash separated ("9/2"). The defaults mirror record.DefaultLayout.
type DecoderConfig struct {
	PlaceMinLen  int    `yaml:"place_min_len"  env:"DECODER_PLACE_MIN_LEN"  env-default:"20"`
	Address      string `yaml:"address"        env:"DECODER_ADDRESS"        env-default:"2"`
	Coords       string `yaml:"coords"         env:"DECODER_COORDS"         env-default:"9"`
	ID           string `yaml:"id"             env:"DECODER_ID"             env-default:"10"`
	Name         string `yaml:"name"           env:"DECODER_NAME"           env-default:"11"`
	Website      string `yaml:"website"        env:"DECODER_WEBSITE"        env-default:"12"`
	Category     string `yaml:"category"       env:"DECODER_CATEGORY"       env-default:"13/0"`
	Rating       string `yaml:"rating"         env:"DECODER_RATING"         env-default:"14"`
	ReviewCount  string `yaml:"review_count"   env:"DECODER_REVIEW_COUNT"   env-default:"15"`
	Phone        string `yaml:"phone"          env:"DECODER_PHONE"          env-default:"17"`
	URL          string `yaml:"url"            env:"DECODER_URL"            env-default:"20"`
	LatitudeIdx  int    `yaml:"latitude_idx"   env:"DECODER_LATITUDE_IDX"   env-default:"2"`
	LongitudeIdx int    `yaml:"longitude_idx"  env:"DECODER_LONGITUDE_IDX"  env-default:"3"`
	IDWindowFrom int    `yaml:"id_window_from" env:"DECODER_ID_WINDOW_FROM" env-default:"0"`
	IDWindowTo   int    `yaml:"id_window_to"   env:"DECODER_ID_WINDOW_TO"   env-default:"20"`
	ScanMinLen   int    `yaml:"scan_min_len"   env:"DECODER_SCAN_MIN_LEN"   env-default:"15"`
	ScanDepth    int    `yaml:"scan_depth"     env:"DECODER_SCAN_DEPTH"     env-default:"1"`
	MaxDepth     int    `yaml:"max_depth"      env:"DECODER_MAX_DEPTH"      env-default:"4"`

	ReviewMinLen int    `yaml:"review_min_len" env:"DECODER_REVIEW_MIN_LEN" env-default:"4"`
	Author       string `yaml:"author"         env:"DECODER_AUTHOR"         env-default:"0/1"`
	RelativeDate string `yaml:"relative_date"  env:"DECODER_RELATIVE_DATE"  env-default:"1"`
	Text         string `yaml:"text"           env:"DECODER_TEXT"           env-default:"3"`
	ReviewRating string `yaml:"review_rating"  env:"DECODER_REVIEW_RATING"  env-default:"4"`
	HelpfulCount string `yaml:"helpful_count"  env:"DECODER_HELPFUL_COUNT"  env-default:"6"`
}

// FetchConfig holds settings of the optional fetch collaborator.
type FetchConfig struct {
	Timeout  time.Duration `yaml:"timeout"  env:"FETCH_TIMEOUT"  env-default:"20s"`
	Profile  string        `yaml:"profile"  env:"FETCH_PROFILE"  env-default:"chrome_133"`
	Language string        `yaml:"language" env:"FETCH_LANGUAGE" env-default:"en"`
	Region   string        `yaml:"region"   env:"FETCH_REGION"   env-default:""`
}

// Layout converts the configured path strings into a record.Layout.
func (c DecoderConfig) Layout() (record.Layout, error) {
	l := record.Layout{
		PlaceMinLen:  c.PlaceMinLen,
		LatitudeIdx:  c.LatitudeIdx,
		LongitudeIdx: c.LongitudeIdx,
		IDWindow:     [2]int{c.IDWindowFrom, c.IDWindowTo},
		ScanMinLen:   c.ScanMinLen,
		ScanDepth:    c.ScanDepth,
		MaxRootDepth: c.MaxDepth,
		ReviewMinLen: c.ReviewMinLen,
	}
	paths := []struct {
		raw string
		dst *value.Path
	}{
		{c.Address, &l.Address},
		{c.Coords, &l.Coords},
		{c.ID, &l.ID},
		{c.Name, &l.Name},
		{c.Website, &l.Website},
		{c.Category, &l.Category},
		{c.Rating, &l.Rating},
		{c.ReviewCount, &l.ReviewCount},
		{c.Phone, &l.Phone},
		{c.URL, &l.URL},
		{c.Author, &l.Author},
		{c.RelativeDate, &l.RelativeDate},
		{c.Text, &l.Text},
		{c.ReviewRating, &l.ReviewRating},
		{c.HelpfulCount, &l.HelpfulCount},
	}
	for _, p := range paths {
		parsed, err := value.ParsePath(p.raw)
		if err != nil {
			return record.Layout{}, err
		}
		*p.dst = parsed
	}
	return l, nil
}
