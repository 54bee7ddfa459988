package supernovas

import "errors"

var (
	ErrOverflow        = errors.New("julian date overflow")         //Returned when a day count leaves the int64 range
	ErrNonFinite       = errors.New("non-finite julian date")       //Returned when constructing from NaN or an infinity
	ErrInvalidEncoding = errors.New("invalid julian date encoding") //Returned by UnmarshalBinary for malformed data
)
