package importer

import (
	"fmt"
	"io"

	"github.com/kakeibo-app/kakeibo/internal/importer/bankcsv"
)

type Service struct {
	bankParser Parser
	cardParser Parser
}

func NewService() *Service {
	return &Service{
		bankParser: bankcsv.NewParser(bankcsv.BankProfiles()),
		cardParser: bankcsv.NewParser(bankcsv.CardProfiles()),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]Row, error) {
	var parser Parser

	switch source {
	case SourceBank:
		parser = s.bankParser
	case SourceCard:
		parser = s.cardParser
	default:
		return nil, fmt.Errorf("unknown statement source: %s", source)
	}

	return parser.Parse(r)
}
