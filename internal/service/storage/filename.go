package storage

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// maxNameBytes 파일명에 사용하는 이름 부분의 최대 바이트 수
const maxNameBytes = 64

// filenameReplacer 파일 시스템에서 의미를 가지는 문자를 안전한 문자로 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// generateFilename 스냅샷 이름으로부터 파일명을 생성합니다.
//
// 사람이 읽을 수 있도록 kebab-case로 정리한 이름 뒤에 원래 이름의 FNV-64a 해시를 붙입니다.
// 정리 과정에서 서로 다른 이름이 같아지더라도 해시로 구분되므로 파일이 충돌하지 않습니다.
//
//	generateFilename("Catalog Snapshot") // "snapshot-catalog-snapshot-<16자리 해시>.json"
func generateFilename(name string) string {
	sanitized := truncateByBytes(sanitizeName(name), maxNameBytes)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(name))

	return fmt.Sprintf("snapshot-%s-%016x.json", sanitized, hasher.Sum64())
}

func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes UTF-8 문자가 잘리지 않도록 limit 바이트 이하로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end+size > limit {
			break
		}
		end += size
	}
	return s[:end]
}
