package contract

import (
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrMessageRequired 알림 메시지 본문이 비어 있을 때 반환됩니다.
	ErrMessageRequired = apperrors.New(apperrors.InvalidInput, "알림 메시지 본문은 비워둘 수 없습니다")

	// ErrServiceStopped 서비스가 실행 중이 아닐 때 요청이 들어오면 반환됩니다.
	ErrServiceStopped = apperrors.New(apperrors.Unavailable, "서비스가 실행 중이 아닙니다")

	// ErrSnapshotNotFound 저장된 카탈로그 스냅샷이 없을 때 반환됩니다.
	// 최초 실행처럼 정상적인 상황에서도 발생할 수 있으므로, 호출자는 이를 오류가 아닌 "빈 상태"로 취급할 수 있습니다.
	ErrSnapshotNotFound = apperrors.New(apperrors.NotFound, "저장된 스냅샷이 존재하지 않습니다")

	// ErrSyncInProgress 카탈로그 동기화가 이미 진행 중일 때 수동 동기화 요청에 대해 반환됩니다.
	ErrSyncInProgress = apperrors.New(apperrors.Conflict, "카탈로그 동기화가 이미 진행 중입니다")
)
