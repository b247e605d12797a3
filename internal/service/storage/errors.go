package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrPathTraversalDetected 저장 경로가 기준 디렉토리를 벗어나는 경우 반환됩니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrLoadRequiresPointer Load 대상이 nil이 아닌 포인터가 아닐 때 반환됩니다.
	ErrLoadRequiresPointer = apperrors.New(apperrors.Internal, "내부 시스템 오류: 데이터 로드 대상 객체가 올바른 포인터 타입이 아닙니다")

	// ErrEmptyName 스냅샷 이름이 비어 있을 때 반환됩니다.
	ErrEmptyName = apperrors.New(apperrors.InvalidInput, "스냅샷 이름은 비워둘 수 없습니다")
)

func newErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

func newErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

func newErrJSONMarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "데이터 처리 실패: 스냅샷 직렬화(JSON Marshal) 중 오류가 발생했습니다")
}

func newErrJSONUnmarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, "데이터 처리 실패: 스냅샷 역직렬화(JSON Unmarshal) 중 오류가 발생했습니다")
}

func newErrReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "스냅샷 조회 실패: 파일 읽기 중 오류가 발생했습니다")
}

func newErrWriteFailed(err error, step string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("스냅샷 저장 실패: %s 중 오류가 발생했습니다", step))
}
