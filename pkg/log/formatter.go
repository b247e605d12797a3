package log

// silentFormatter 기본 출력 경로(io.Discard)에 대한 포맷팅 비용을 없애기 위한 포맷터입니다.
// 실제 포맷팅은 hook이 보유한 TextFormatter가 한 번만 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}
