// Package version 빌드 시점에 -ldflags로 주입된 메타데이터와 실행 환경 정보를 제공합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/storefront-server/internal/pkg/version.appVersion=v1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// 링커 플래그로 주입되는 값입니다. 애플리케이션 코드에서는 Get()으로만 접근합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

var current atomic.Pointer[Info]

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

func init() {
	info := enrich(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	})
	current.Store(&info)
}

// Info 애플리케이션의 빌드 정보입니다. /version 엔드포인트와 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 빌드 정보를 반환합니다.
func Get() Info {
	if info := current.Load(); info != nil {
		return *info
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
}

// enrich 비어 있는 필드를 런타임 정보와 Go 모듈의 VCS 메타데이터로 채웁니다.
// -ldflags 없이 go run으로 실행한 개발 환경에서도 커밋 정보를 얻을 수 있습니다.
func enrich(info Info) Info {
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	if info.OS == "" {
		info.OS = runtime.GOOS
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" || info.Commit == unknown {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" || info.BuildDate == unknown {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					info.DirtyBuild = true
				}
			}
		}
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	return info
}

// Fields 구조적 로깅에 사용할 필드 맵을 반환합니다.
func (i Info) Fields() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.0+dirty (commit: abc1234, build: 12, ...)" 형태의 요약 문자열을 반환합니다.
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	add := func(key, value string) {
		if value != "" && value != unknown {
			details = append(details, fmt.Sprintf("%s: %s", key, value))
		}
	}

	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	add("commit", commit)
	add("build", i.BuildNumber)
	add("date", i.BuildDate)
	add("go", i.GoVersion)
	if i.OS != "" && i.Arch != "" {
		add("platform", i.OS+"/"+i.Arch)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
