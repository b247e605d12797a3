// Package storage 카탈로그 스냅샷을 JSON 파일로 영속화하는 저장소를 제공합니다.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/darkkaiser/storefront-server/pkg/concurrency"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const component = "storage"

const (
	// defaultDataDirectory 디렉토리가 지정되지 않았을 때 사용하는 기본 경로
	defaultDataDirectory = "snapshots"

	// tempFilePattern 원자적 쓰기에 사용하는 임시 파일의 이름 패턴
	tempFilePattern = "snapshot-*.tmp"

	// staleTempFileAge 이 시간보다 오래된 임시 파일은 비정상 종료의 잔재로 보고 정리합니다.
	staleTempFileAge = 1 * time.Hour
)

// FileSnapshotStore 스냅샷을 이름별 JSON 파일로 저장합니다.
//
// 쓰기는 임시 파일에 기록한 뒤 rename하는 방식으로 원자적으로 수행되어, 저장 도중 프로세스가 종료되어도
// 이전 스냅샷이 손상되지 않습니다. 같은 파일에 대한 읽기와 쓰기는 파일 단위 잠금으로 직렬화됩니다.
type FileSnapshotStore struct {
	baseDir string

	locks *concurrency.KeyedMutex
}

var _ contract.SnapshotStore = (*FileSnapshotStore)(nil)

// NewFileSnapshotStore dir 디렉토리를 기준으로 하는 저장소를 생성합니다. 디렉토리가 없으면 만듭니다.
func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, newErrPathResolutionFailed(err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, newErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileSnapshotStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex(),
	}
	s.cleanupStaleTempFiles()

	return s, nil
}

// Dir 저장소의 기준 디렉토리(절대 경로)를 반환합니다.
func (s *FileSnapshotStore) Dir() string {
	return s.baseDir
}

// Load name에 저장된 스냅샷을 v로 읽어옵니다. 파일이 없으면 contract.ErrSnapshotNotFound를 반환합니다.
func (s *FileSnapshotStore) Load(name string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrLoadRequiresPointer
	}

	filename, err := s.resolveSafePath(name)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(strings.ToLower(filename))
	data, err := os.ReadFile(filename)
	unlock()

	if err != nil {
		if os.IsNotExist(err) {
			return contract.ErrSnapshotNotFound
		}
		return newErrReadFailed(err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return newErrJSONUnmarshalFailed(err)
	}
	return nil
}

// Save v를 JSON으로 직렬화하여 name 아래에 원자적으로 저장합니다.
func (s *FileSnapshotStore) Save(name string, v any) error {
	filename, err := s.resolveSafePath(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return newErrJSONMarshalFailed(err)
	}

	unlock := s.locks.Lock(strings.ToLower(filename))
	defer unlock()

	return s.writeAtomic(filename, data)
}

func (s *FileSnapshotStore) resolveSafePath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}

	cleanPath := filepath.Clean(filepath.Join(s.baseDir, generateFilename(name)))

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", newErrPathResolutionFailed(err)
	}
	if rel == "." || strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		applog.WithComponentAndFields(component, applog.Fields{
			"name":     name,
			"base_dir": s.baseDir,
			"path":     cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

func (s *FileSnapshotStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return newErrWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// rename에 성공하면 tmpPath는 더 이상 존재하지 않으므로 Remove는 무해합니다.
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return newErrWriteFailed(err, "파일 쓰기")
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return newErrWriteFailed(err, "디스크 동기화")
	}
	if err := tmpFile.Close(); err != nil {
		return newErrWriteFailed(err, "파일 닫기")
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return newErrWriteFailed(err, "파일 이름 변경")
	}

	return nil
}

// cleanupStaleTempFiles 이전 실행에서 비정상 종료로 남은 오래된 임시 파일을 정리합니다.
func (s *FileSnapshotStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")
		return
	}

	threshold := time.Now().Add(-staleTempFileAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		path := filepath.Join(s.baseDir, entry.Name())
		if err := os.Remove(path); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  path,
				"error": err,
			}).Warn("임시 파일 삭제 실패")
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"file": path,
		}).Info("이전 실행에서 남은 임시 파일을 삭제했습니다")
	}
}
