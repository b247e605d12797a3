package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// setupOnce Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 Setup() 호출 결과를 보관하여, 재호출 시 동일한 Closer와 에러를 돌려줍니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 로그는 logrus 기본 출력으로 내보내지 않고 hook을 통해 레벨별 파일(main/critical/verbose)과
// 콘솔로 분배됩니다. 반환된 Closer는 main 함수에서 defer로 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	rotate := rotationPolicy{
		maxSizeMB:  valueOrDefault(opts.MaxSizeMB, defaultMaxSizeMB),
		maxBackups: valueOrDefault(opts.MaxBackups, defaultMaxBackups),
		maxAge:     opts.MaxAge,
	}

	mainWriter := rotate.newWriter(dir, opts.Name, "")
	h := &hook{
		mainWriter: mainWriter,
		formatter:  newTextFormatter(opts.CallerPathPrefix),
	}
	closers := []io.Closer{mainWriter}

	if opts.EnableCriticalLog {
		w := rotate.newWriter(dir, opts.Name, "critical")
		h.criticalWriter = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := rotate.newWriter(dir, opts.Name, "verbose")
		h.verboseWriter = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)
	logrus.AddHook(h)

	c := &closer{closers: closers, hook: h}

	// Fatal 로그로 인한 os.Exit 직전에 버퍼에 남은 로그를 디스크로 내려씁니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// rotationPolicy lumberjack 로테이션 정책입니다.
type rotationPolicy struct {
	maxSizeMB  int
	maxBackups int
	maxAge     int
}

// newWriter "{name}[.{suffix}].log" 파일에 기록하는 로테이션 Writer를 생성합니다.
// 파일은 첫 번째 Write 시점에 열리므로 생성 자체는 실패하지 않습니다.
func (p rotationPolicy) newWriter(dir, name, suffix string) *lumberjack.Logger {
	filename := name
	if suffix != "" {
		filename += "." + suffix
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, filename+"."+fileExt),
		MaxSize:    p.maxSizeMB,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   false,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *TextFormatter {
	return &TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}

func valueOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
