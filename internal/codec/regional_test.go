package codec

import "time"

func (s *UnitTestSuite) TestRegionalInt() {
	doc, err := EncodeRegional(map[string]int64{"JP": 1000, "US": 7})
	s.NoError(err)
	m, err := DecodeRegional[int64](doc)
	s.NoError(err)
	s.Equal(int64(1000), m["JP"])
	s.Equal(int64(7), m["US"])
}

func (s *UnitTestSuite) TestRegionalTime() {
	ts := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	doc, err := EncodeRegional(map[string]time.Time{"440": ts})
	s.NoError(err)
	m, err := DecodeRegional[time.Time](doc)
	s.NoError(err)
	s.True(ts.Equal(m["440"]))
}

func (s *UnitTestSuite) TestRegionalNilAndEmpty() {
	doc, err := EncodeRegional[string](nil)
	s.NoError(err)
	s.Equal("{}", doc)

	m, err := DecodeRegional[string]("")
	s.NoError(err)
	s.NotNil(m)
	s.Empty(m)

	m, err = DecodeRegional[string]("null")
	s.NoError(err)
	s.NotNil(m)
}

func (s *UnitTestSuite) TestRegionalMalformed() {
	_, err := DecodeRegional[int64]("{not json")
	s.Error(err)

	_, err = DecodeRegional[int64](`{"JP":"abc"}`)
	s.Error(err)
}

func (s *UnitTestSuite) TestBlobRoundTrip() {
	in := []byte(`{"hello":"world","hello2":"world","hello3":"world"}`)
	out, err := Decompress(Compress(in))
	s.NoError(err)
	s.Equal(in, out)

	b, err := DecodeBlob(EncodeBlob(in))
	s.NoError(err)
	s.Equal(in, b)

	_, err = DecodeBlob("%%%")
	s.Error(err)
}
