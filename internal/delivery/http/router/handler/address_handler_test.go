package handler

import (
	"context"
	"net/http"
	"testing"

	domainerrors "nms/internal/domain/errors"
	mockUsecase "nms/internal/mocks/usecase"
	"nms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressHandler_AddAddress(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: uc})

	uc.EXPECT().
		AddAddress(mock.Anything, testActorID, mock.AnythingOfType("*usecase.AddressDTO")).
		RunAndReturn(func(_ context.Context, _ int64, input *usecase.AddressDTO) (*usecase.AddressDTO, error) {
			assert.Equal(t, "vendor", input.SourceType)
			assert.Equal(t, "HQ", input.AddressDescription)
			output := *input
			output.ID = 42

			return &output, nil
		})

	c, rec := newTestContext(e, http.MethodPost, "/api/address/add-address",
		`{"addressDescription":" HQ ","sourceId":5,"sourceType":"Vendor","cityId":2,"phone":"555"}`)
	require.NoError(t, h.AddAddress(c))

	requireStatus(t, rec, http.StatusOK)
	var address usecase.AddressDTO
	decodeData(t, rec, &address)
	assert.Equal(t, int64(42), address.ID)
	assert.Equal(t, "vendor", address.SourceType)
}

func TestAddressHandler_AddAddress_Duplicate(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: uc})

	uc.EXPECT().
		AddAddress(mock.Anything, testActorID, mock.Anything).
		Return(nil, domainerrors.ErrAddressAlreadyExists)

	c, rec := newTestContext(e, http.MethodPost, "/api/address/add-address",
		`{"sourceId":5,"sourceType":"customer","cityId":2}`)
	require.NoError(t, h.AddAddress(c))

	requireStatus(t, rec, http.StatusBadRequest)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Address for this source already exist", body.Message)
	assert.Equal(t, "ADDRESS_ALREADY_EXISTS", body.Error.Code)
}

func TestAddressHandler_AddAddress_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"sourceId":`},
		{name: "missing source type", body: `{"sourceId":5,"cityId":2}`},
		{name: "blank source type", body: `{"sourceId":5,"sourceType":"   ","cityId":2}`},
		{name: "zero city", body: `{"sourceId":5,"sourceType":"customer","cityId":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			h := NewAddressHandler(AddressHandlerParams{AddressUC: mockUsecase.NewMockAddressUsecase(t)})

			c, rec := newTestContext(e, http.MethodPost, "/api/address/add-address", tt.body)
			require.NoError(t, h.AddAddress(c))

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_ERROR", decodeResponse(t, rec).Error.Code)
		})
	}
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		ucErr          error
		callsUsecase   bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "success",
			body:           `{"addressId":11,"sourceId":5,"sourceType":"customer","cityId":2}`,
			callsUsecase:   true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "missing id",
			body:           `{"sourceId":5,"sourceType":"customer","cityId":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "not found",
			body:           `{"addressId":404,"sourceId":5,"sourceType":"customer","cityId":2}`,
			ucErr:          domainerrors.ErrRecordNotFound,
			callsUsecase:   true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "RECORD_NOT_FOUND",
		},
		{
			name:           "nothing changed",
			body:           `{"addressId":11,"sourceId":5,"sourceType":"customer","cityId":2}`,
			ucErr:          domainerrors.ErrNothingChanged,
			callsUsecase:   true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "NOTHING_CHANGED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			uc := mockUsecase.NewMockAddressUsecase(t)
			h := NewAddressHandler(AddressHandlerParams{AddressUC: uc})
			if tt.callsUsecase {
				uc.EXPECT().UpdateAddress(mock.Anything, testActorID, mock.Anything).Return(tt.ucErr)
			}

			c, rec := newTestContext(e, http.MethodPut, "/api/address/update-address", tt.body)
			require.NoError(t, h.UpdateAddress(c))

			requireStatus(t, rec, tt.expectedStatus)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeResponse(t, rec).Error.Code)
			}
		})
	}
}

func TestAddressHandler_GetAddress(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: uc})

	uc.EXPECT().GetAddress(mock.Anything, int64(11)).Return(&usecase.AddressDTO{ID: 11, SourceType: "customer"}, nil)

	c, rec := newTestContext(e, http.MethodGet, "/api/address/get-address/11", "")
	c.SetPath("/api/address/get-address/:id")
	c.SetParamNames("id")
	c.SetParamValues("11")
	require.NoError(t, h.GetAddress(c))

	requireStatus(t, rec, http.StatusOK)
	var address usecase.AddressDTO
	decodeData(t, rec, &address)
	assert.Equal(t, int64(11), address.ID)
}

func TestAddressHandler_GetAddress_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewAddressHandler(AddressHandlerParams{AddressUC: mockUsecase.NewMockAddressUsecase(t)})

	c, rec := newTestContext(e, http.MethodGet, "/api/address/get-address/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.GetAddress(c))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAddressHandler_GetAddresses_BindsFilter(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: uc})

	uc.EXPECT().
		ListAddresses(mock.Anything, usecase.AddressFilter{CityID: 2, SourceType: "Vendor"}).
		Return([]*usecase.AddressDTO{{ID: 1}}, nil)

	c, rec := newTestContext(e, http.MethodGet, "/api/address/get-addresses?cityId=2&sourceType=Vendor", "")
	require.NoError(t, h.GetAddresses(c))

	requireStatus(t, rec, http.StatusOK)
	var addresses []usecase.AddressDTO
	decodeData(t, rec, &addresses)
	assert.Len(t, addresses, 1)
}
