package location

type RegionEntity struct {
	Id   int64  `db:"id"`
	Name string `db:"name"`
}

type CountryEntity struct {
	Id       string `db:"id"`
	Name     string `db:"name"`
	RegionId *int64 `db:"region_id"`
}

type Entity struct {
	Id            int64   `db:"id"`
	StreetAddress *string `db:"street_address"`
	PostalCode    *string `db:"postal_code"`
	City          string  `db:"city"`
	StateProvince *string `db:"state_province"`
	CountryId     *string `db:"country_id"`
}

type RegionResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type CountryResponse struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	RegionId *int64 `json:"region_id,omitempty"`
}

type Response struct {
	Id            int64   `json:"id"`
	StreetAddress *string `json:"street_address,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	City          string  `json:"city"`
	StateProvince *string `json:"state_province,omitempty"`
	CountryId     *string `json:"country_id,omitempty"`
}

func (e RegionEntity) toResponse() RegionResponse {
	return RegionResponse(e)
}

func (e CountryEntity) toResponse() CountryResponse {
	return CountryResponse(e)
}

func (e Entity) toResponse() Response {
	return Response(e)
}

type CreateRegionRequest struct {
	Name string `json:"name" validate:"required,max=25"`
}

// CreateCountryRequest id страны - двухбуквенный код ISO 3166-1
type CreateCountryRequest struct {
	Id       string `json:"id" validate:"required,len=2,alpha"`
	Name     string `json:"name" validate:"required,max=40"`
	RegionId *int64 `json:"region_id" validate:"omitempty,gt=0"`
}

type CreateRequest struct {
	StreetAddress *string `json:"street_address" validate:"omitempty,max=40"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,max=12"`
	City          string  `json:"city" validate:"required,max=30"`
	StateProvince *string `json:"state_province" validate:"omitempty,max=25"`
	CountryId     *string `json:"country_id" validate:"omitempty,len=2,alpha"`
}

func (req *CreateRequest) ToEntity(id int64) Entity {
	return Entity{
		Id:            id,
		StreetAddress: req.StreetAddress,
		PostalCode:    req.PostalCode,
		City:          req.City,
		StateProvince: req.StateProvince,
		CountryId:     req.CountryId,
	}
}
