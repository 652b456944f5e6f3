package build

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint 描述一次构建的全部输入；RenderHash 相同则输出必然相同
type Fingerprint struct {
	DataHash     string
	TemplateHash string
	ConfigHash   string
	RenderHash   string
}

func (f *Fingerprint) ComputeRenderHash() {
	h := sha256.New()
	h.Write([]byte(f.DataHash))
	h.Write([]byte(f.TemplateHash))
	h.Write([]byte(f.ConfigHash))
	f.RenderHash = hex.EncodeToString(h.Sum(nil))
}

func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func HashStrings(items ...string) string {
	h := sha256.New()
	for _, s := range items {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
