package controller

import (
	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

func sonicMarshal(v interface{}) (datatypes.JSON, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
