/*
Package validation 설정 파일과 API 요청 등 외부 입력값의 형식을 검증하는 함수들을 제공합니다.

주요 기능:

  - CORS Origin 검증
  - 백엔드 API Base URL 검증
  - 호스트명 및 포트 번호 검증

모든 검증 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환하며, 상태를 갖지 않으므로 동시에 호출해도 안전합니다.
*/
package validation
