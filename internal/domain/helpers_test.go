package domain

import "github.com/m04kA/SMC-StylistService/pkg/types"

func mustTime(s string) types.TimeString {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}
