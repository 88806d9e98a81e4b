package core

import (
	"errors"
	"testing"
)

func TestResult_States(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name          string
		res           Result[int]
		wantValue     bool
		wantExhausted bool
		wantError     bool
		wantErr       error
		wantString    string
	}{
		{
			name:       "ok",
			res:        Ok(42),
			wantValue:  true,
			wantString: "Ok(42)",
		},
		{
			name:       "ok zero is still a value",
			res:        Ok(0),
			wantValue:  true,
			wantString: "Ok(0)",
		},
		{
			name:          "end",
			res:           End[int](),
			wantExhausted: true,
			wantString:    "End",
		},
		{
			name:       "error",
			res:        Err[int](boom),
			wantError:  true,
			wantErr:    boom,
			wantString: "Err(boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.IsValue(); got != tt.wantValue {
				t.Errorf("IsValue() = %v, want %v", got, tt.wantValue)
			}
			if got := tt.res.IsExhausted(); got != tt.wantExhausted {
				t.Errorf("IsExhausted() = %v, want %v", got, tt.wantExhausted)
			}
			if got := tt.res.IsError(); got != tt.wantError {
				t.Errorf("IsError() = %v, want %v", got, tt.wantError)
			}
			if got := tt.res.Done(); got == tt.wantValue {
				t.Errorf("Done() = %v, want %v", got, !tt.wantValue)
			}
			if got := tt.res.Error(); !errors.Is(got, tt.wantErr) || (tt.wantErr == nil && got != nil) {
				t.Errorf("Error() = %v, want %v", got, tt.wantErr)
			}
			if got := tt.res.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestResult_Unwrap(t *testing.T) {
	v, ok := Ok(7).Unwrap()
	if !ok || v != 7 {
		t.Errorf("Ok(7).Unwrap() = (%d, %v), want (7, true)", v, ok)
	}

	_, ok = End[int]().Unwrap()
	if ok {
		t.Error("End().Unwrap() reported a value")
	}
}

func TestForward(t *testing.T) {
	boom := errors.New("boom")

	if got := Forward[string](End[int]()); !got.IsExhausted() {
		t.Errorf("Forward(End) = %v, want End", got)
	}
	if got := Forward[string](Err[int](boom)); !errors.Is(got.Error(), boom) {
		t.Errorf("Forward(Err) = %v, want Err(boom)", got)
	}
}
