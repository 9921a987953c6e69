package logx

// SensitiveDataMaskerInterface redacts secrets from dumped HTTP payloads
// before they reach the log.
type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
