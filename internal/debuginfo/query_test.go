package debuginfo

func (s *UnitTestSuite) TestQuery() {
	r := &Report{
		AppVersion: "1.0",
		Regions: []RegionReport{
			{Region: "440", ETag: "a", DownloadCount: 2},
			{Region: "US", ETag: "b"},
		},
	}

	v, err := Query("regions[?region=='US'].etag | [0]", r)
	s.NoError(err)
	s.Equal("b", v)

	v, err = Query("regions[0].download_count", r)
	s.NoError(err)
	s.Equal(float64(2), v)

	v, err = Query("missing", r)
	s.NoError(err)
	s.Nil(v)

	_, err = Query("regions[", r)
	s.Error(err)
}

func (s *UnitTestSuite) TestQueryString() {
	r := &Report{AppVersion: "1.0", SupportedRegions: []string{"440"}}

	v, err := QueryString("app_version", r)
	s.NoError(err)
	s.Require().NotNil(v)
	s.Equal("1.0", *v)

	v, err = QueryString("supported_regions", r)
	s.NoError(err)
	s.Require().NotNil(v)
	s.Equal(`["440"]`, *v)

	v, err = QueryString("nothing", r)
	s.NoError(err)
	s.Nil(v)
}
