// Package errors 애플리케이션 전용 에러 타입을 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며 Wrap을 통해 원인 에러와 컨텍스트를 누적합니다.
//
//	err := errors.New(errors.NotFound, "상품을 찾을 수 없습니다")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.Unavailable, "상품 목록 조회 실패")
//	}
//
//	if errors.Is(err, errors.NotFound) { ... }
//
// 외부 라이브러리 에러를 감쌀 때는 에러가 발생한 계층의 성격에 맞는 타입을 선택합니다.
// 예를 들어 context.DeadlineExceeded는 Timeout, JSON 디코딩 오류는 ParsingFailed로 분류합니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류, 메시지, 원인 에러와 생성 시점의 호출 스택을 함께 보관하는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 분류를 반환합니다.
func (e *AppError) Type() ErrorType { return e.errType }

// Message 원인 에러를 제외한 에러 메시지를 반환합니다.
func (e *AppError) Message() string { return e.message }

// Stack 에러가 생성된 위치의 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error { return e.cause }

// Format %+v 형식으로 출력하면 에러 체인과 스택 트레이스를 함께 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) formatVerbose(s fmt.State) {
	_, _ = fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	// 스택은 체인의 끝(원인이 없거나 외부 에러인 지점)에서만 출력합니다.
	var inner *AppError
	if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
		_, _ = io.WriteString(s, "\nStack trace:")
		for _, frame := range e.stack {
			fn := frame.Function
			if idx := strings.LastIndex(fn, "/"); idx != -1 {
				fn = fn[idx+1:]
			}
			_, _ = fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, fn)
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(s, "\nCaused by:\n")
		if f, ok := e.cause.(fmt.Formatter); ok {
			f.Format(s, 'v')
		} else {
			_, _ = fmt.Fprintf(s, "\t%v", e.cause)
		}
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message, stack: captureStack(defaultCallerSkip)}
}

// Newf 포맷 문자열로 메시지를 구성하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), stack: captureStack(defaultCallerSkip)}
}

// Wrap err을 원인으로 하는 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err, stack: captureStack(defaultCallerSkip)}
}

// Wrapf 포맷 문자열로 메시지를 구성하여 err을 감쌉니다. err이 nil이면 nil을 반환합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err, stack: captureStack(defaultCallerSkip)}
}

// Is 에러 체인에 errType으로 분류된 AppError가 하나라도 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As errors.As와 동일합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽에 있는 원인 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 분류를 반환합니다.
// 체인에 AppError가 없으면 Unknown을 반환합니다.
//
//	err := Wrap(New(NotFound, "상품 없음"), Internal, "조회 실패")
//	UnderlyingType(err) // NotFound
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
