package osm2routing

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type FileFormat uint16

const (
	FORMAT_XML = FileFormat(iota + 1)
	FORMAT_PBF
	FORMAT_AUTO = FileFormat(0)
)

func (iotaIdx FileFormat) String() string {
	return enumName([]string{"auto", "xml", "pbf"}, int(iotaIdx))
}

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

type Parser struct {
	filename   string
	format     FileFormat
	pbfWorkers int
	logger     *zap.Logger
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Network parser parameters:
	filename: '%s'
	format: '%s'
	pbf_workers: %d
	`,
		parser.filename,
		parser.format,
		parser.pbfWorkers,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename:   fileName,
		format:     FORMAT_AUTO,
		pbfWorkers: 4,
		logger:     zap.NewNop(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithFormat(format FileFormat) func(*Parser) {
	return func(parser *Parser) {
		parser.format = format
	}
}

func WithPBFWorkers(pbfWorkers int) func(*Parser) {
	return func(parser *Parser) {
		if pbfWorkers > 0 {
			parser.pbfWorkers = pbfWorkers
		}
	}
}

func WithLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

// resolveFormat guesses file format by its extension when it has not been set explicitly
func (parser *Parser) resolveFormat() (FileFormat, error) {
	if parser.format != FORMAT_AUTO {
		return parser.format, nil
	}
	ext := strings.ToLower(filepath.Ext(parser.filename))
	switch ext {
	case ".osm", ".xml":
		return FORMAT_XML, nil
	case ".pbf":
		return FORMAT_PBF, nil
	default:
		return FORMAT_AUTO, errors.Wrapf(ErrUnsupportedFormat, "File extension '%s' for file '%s' is not handled yet", ext, parser.filename)
	}
}
