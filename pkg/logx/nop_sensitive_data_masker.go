package logx

// NopSensitiveDataMasker passes log payloads through untouched. The deals bot
// only talks to public market endpoints, so nothing needs masking by default;
// the hook stays for clients that carry credentials.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
