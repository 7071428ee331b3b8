// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: mercuriale/v1/mercuriale.proto

package mercurialev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CatalogEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Allergens     []string               `protobuf:"bytes,5,rep,name=allergens,proto3" json:"allergens,omitempty"`
	CurrentStock  float64                `protobuf:"fixed64,6,opt,name=current_stock,json=currentStock,proto3" json:"current_stock,omitempty"`
	MinStock      float64                `protobuf:"fixed64,7,opt,name=min_stock,json=minStock,proto3" json:"min_stock,omitempty"`
	CriticalStock float64                `protobuf:"fixed64,8,opt,name=critical_stock,json=criticalStock,proto3" json:"critical_stock,omitempty"`
	MaxStock      float64                `protobuf:"fixed64,9,opt,name=max_stock,json=maxStock,proto3" json:"max_stock,omitempty"`
	StockLevel    string                 `protobuf:"bytes,10,opt,name=stock_level,json=stockLevel,proto3" json:"stock_level,omitempty"` // OK | LOW | CRITICAL
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`    // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`    // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CatalogEntry) Reset() {
	*x = CatalogEntry{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CatalogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CatalogEntry) ProtoMessage() {}

func (x *CatalogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CatalogEntry.ProtoReflect.Descriptor instead.
func (*CatalogEntry) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{0}
}

func (x *CatalogEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CatalogEntry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CatalogEntry) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *CatalogEntry) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *CatalogEntry) GetAllergens() []string {
	if x != nil {
		return x.Allergens
	}
	return nil
}

func (x *CatalogEntry) GetCurrentStock() float64 {
	if x != nil {
		return x.CurrentStock
	}
	return 0
}

func (x *CatalogEntry) GetMinStock() float64 {
	if x != nil {
		return x.MinStock
	}
	return 0
}

func (x *CatalogEntry) GetCriticalStock() float64 {
	if x != nil {
		return x.CriticalStock
	}
	return 0
}

func (x *CatalogEntry) GetMaxStock() float64 {
	if x != nil {
		return x.MaxStock
	}
	return 0
}

func (x *CatalogEntry) GetStockLevel() string {
	if x != nil {
		return x.StockLevel
	}
	return ""
}

func (x *CatalogEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *CatalogEntry) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type StockMovement struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EntryId       string                 `protobuf:"bytes,2,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	Direction     string                 `protobuf:"bytes,3,opt,name=direction,proto3" json:"direction,omitempty"` // IN | OUT
	Quantity      float64                `protobuf:"fixed64,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Reason        string                 `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StockMovement) Reset() {
	*x = StockMovement{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StockMovement) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StockMovement) ProtoMessage() {}

func (x *StockMovement) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StockMovement.ProtoReflect.Descriptor instead.
func (*StockMovement) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{1}
}

func (x *StockMovement) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StockMovement) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *StockMovement) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *StockMovement) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *StockMovement) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *StockMovement) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListEntriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEntriesRequest) Reset() {
	*x = ListEntriesRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEntriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEntriesRequest) ProtoMessage() {}

func (x *ListEntriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEntriesRequest.ProtoReflect.Descriptor instead.
func (*ListEntriesRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{2}
}

type ListEntriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*CatalogEntry        `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEntriesResponse) Reset() {
	*x = ListEntriesResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEntriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEntriesResponse) ProtoMessage() {}

func (x *ListEntriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEntriesResponse.ProtoReflect.Descriptor instead.
func (*ListEntriesResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{3}
}

func (x *ListEntriesResponse) GetEntries() []*CatalogEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type GetEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEntryRequest) Reset() {
	*x = GetEntryRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEntryRequest) ProtoMessage() {}

func (x *GetEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEntryRequest.ProtoReflect.Descriptor instead.
func (*GetEntryRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{4}
}

func (x *GetEntryRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

type CreateEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Unit          string                 `protobuf:"bytes,2,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Allergens     []string               `protobuf:"bytes,4,rep,name=allergens,proto3" json:"allergens,omitempty"`
	CurrentStock  float64                `protobuf:"fixed64,5,opt,name=current_stock,json=currentStock,proto3" json:"current_stock,omitempty"`
	MinStock      float64                `protobuf:"fixed64,6,opt,name=min_stock,json=minStock,proto3" json:"min_stock,omitempty"`
	CriticalStock float64                `protobuf:"fixed64,7,opt,name=critical_stock,json=criticalStock,proto3" json:"critical_stock,omitempty"`
	MaxStock      float64                `protobuf:"fixed64,8,opt,name=max_stock,json=maxStock,proto3" json:"max_stock,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateEntryRequest) Reset() {
	*x = CreateEntryRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEntryRequest) ProtoMessage() {}

func (x *CreateEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEntryRequest.ProtoReflect.Descriptor instead.
func (*CreateEntryRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{5}
}

func (x *CreateEntryRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateEntryRequest) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *CreateEntryRequest) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *CreateEntryRequest) GetAllergens() []string {
	if x != nil {
		return x.Allergens
	}
	return nil
}

func (x *CreateEntryRequest) GetCurrentStock() float64 {
	if x != nil {
		return x.CurrentStock
	}
	return 0
}

func (x *CreateEntryRequest) GetMinStock() float64 {
	if x != nil {
		return x.MinStock
	}
	return 0
}

func (x *CreateEntryRequest) GetCriticalStock() float64 {
	if x != nil {
		return x.CriticalStock
	}
	return 0
}

func (x *CreateEntryRequest) GetMaxStock() float64 {
	if x != nil {
		return x.MaxStock
	}
	return 0
}

type UpdatePriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,2,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePriceRequest) Reset() {
	*x = UpdatePriceRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePriceRequest) ProtoMessage() {}

func (x *UpdatePriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePriceRequest.ProtoReflect.Descriptor instead.
func (*UpdatePriceRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{6}
}

func (x *UpdatePriceRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *UpdatePriceRequest) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

type SetThresholdsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	CriticalStock float64                `protobuf:"fixed64,2,opt,name=critical_stock,json=criticalStock,proto3" json:"critical_stock,omitempty"`
	MinStock      float64                `protobuf:"fixed64,3,opt,name=min_stock,json=minStock,proto3" json:"min_stock,omitempty"`
	MaxStock      float64                `protobuf:"fixed64,4,opt,name=max_stock,json=maxStock,proto3" json:"max_stock,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetThresholdsRequest) Reset() {
	*x = SetThresholdsRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetThresholdsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetThresholdsRequest) ProtoMessage() {}

func (x *SetThresholdsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetThresholdsRequest.ProtoReflect.Descriptor instead.
func (*SetThresholdsRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{7}
}

func (x *SetThresholdsRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *SetThresholdsRequest) GetCriticalStock() float64 {
	if x != nil {
		return x.CriticalStock
	}
	return 0
}

func (x *SetThresholdsRequest) GetMinStock() float64 {
	if x != nil {
		return x.MinStock
	}
	return 0
}

func (x *SetThresholdsRequest) GetMaxStock() float64 {
	if x != nil {
		return x.MaxStock
	}
	return 0
}

type DeleteEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEntryRequest) Reset() {
	*x = DeleteEntryRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEntryRequest) ProtoMessage() {}

func (x *DeleteEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEntryRequest.ProtoReflect.Descriptor instead.
func (*DeleteEntryRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteEntryRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

type DeleteEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEntryResponse) Reset() {
	*x = DeleteEntryResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEntryResponse) ProtoMessage() {}

func (x *DeleteEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEntryResponse.ProtoReflect.Descriptor instead.
func (*DeleteEntryResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{9}
}

type RecordMovementRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	Direction     string                 `protobuf:"bytes,2,opt,name=direction,proto3" json:"direction,omitempty"` // IN | OUT
	Quantity      float64                `protobuf:"fixed64,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordMovementRequest) Reset() {
	*x = RecordMovementRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordMovementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordMovementRequest) ProtoMessage() {}

func (x *RecordMovementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordMovementRequest.ProtoReflect.Descriptor instead.
func (*RecordMovementRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{10}
}

func (x *RecordMovementRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *RecordMovementRequest) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *RecordMovementRequest) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *RecordMovementRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ListMovementsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMovementsRequest) Reset() {
	*x = ListMovementsRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMovementsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMovementsRequest) ProtoMessage() {}

func (x *ListMovementsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMovementsRequest.ProtoReflect.Descriptor instead.
func (*ListMovementsRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{11}
}

func (x *ListMovementsRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

type ListMovementsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Movements     []*StockMovement       `protobuf:"bytes,1,rep,name=movements,proto3" json:"movements,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMovementsResponse) Reset() {
	*x = ListMovementsResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMovementsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMovementsResponse) ProtoMessage() {}

func (x *ListMovementsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMovementsResponse.ProtoReflect.Descriptor instead.
func (*ListMovementsResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{12}
}

func (x *ListMovementsResponse) GetMovements() []*StockMovement {
	if x != nil {
		return x.Movements
	}
	return nil
}

type ExportCatalogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutPath       string                 `protobuf:"bytes,1,opt,name=out_path,json=outPath,proto3" json:"out_path,omitempty"` // directory; empty means current directory
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogRequest) Reset() {
	*x = ExportCatalogRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogRequest) ProtoMessage() {}

func (x *ExportCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogRequest.ProtoReflect.Descriptor instead.
func (*ExportCatalogRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{13}
}

func (x *ExportCatalogRequest) GetOutPath() string {
	if x != nil {
		return x.OutPath
	}
	return ""
}

type ExportCatalogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	RowCount      int32                  `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogResponse) Reset() {
	*x = ExportCatalogResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogResponse) ProtoMessage() {}

func (x *ExportCatalogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogResponse.ProtoReflect.Descriptor instead.
func (*ExportCatalogResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{14}
}

func (x *ExportCatalogResponse) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ExportCatalogResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

type RecipeLine struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"` // snapshot taken when the line was added
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecipeLine) Reset() {
	*x = RecipeLine{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecipeLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecipeLine) ProtoMessage() {}

func (x *RecipeLine) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecipeLine.ProtoReflect.Descriptor instead.
func (*RecipeLine) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{15}
}

func (x *RecipeLine) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RecipeLine) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *RecipeLine) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *RecipeLine) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

type RecipeSheet struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Portions      int32                  `protobuf:"varint,3,opt,name=portions,proto3" json:"portions,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Lines         []*RecipeLine          `protobuf:"bytes,5,rep,name=lines,proto3" json:"lines,omitempty"`
	Instructions  string                 `protobuf:"bytes,6,opt,name=instructions,proto3" json:"instructions,omitempty"`
	Cost          float64                `protobuf:"fixed64,7,opt,name=cost,proto3" json:"cost,omitempty"`
	SalePrice     float64                `protobuf:"fixed64,8,opt,name=sale_price,json=salePrice,proto3" json:"sale_price,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`  // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecipeSheet) Reset() {
	*x = RecipeSheet{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecipeSheet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecipeSheet) ProtoMessage() {}

func (x *RecipeSheet) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecipeSheet.ProtoReflect.Descriptor instead.
func (*RecipeSheet) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{16}
}

func (x *RecipeSheet) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RecipeSheet) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RecipeSheet) GetPortions() int32 {
	if x != nil {
		return x.Portions
	}
	return 0
}

func (x *RecipeSheet) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *RecipeSheet) GetLines() []*RecipeLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *RecipeSheet) GetInstructions() string {
	if x != nil {
		return x.Instructions
	}
	return ""
}

func (x *RecipeSheet) GetCost() float64 {
	if x != nil {
		return x.Cost
	}
	return 0
}

func (x *RecipeSheet) GetSalePrice() float64 {
	if x != nil {
		return x.SalePrice
	}
	return 0
}

func (x *RecipeSheet) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *RecipeSheet) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListRecipesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecipesRequest) Reset() {
	*x = ListRecipesRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecipesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecipesRequest) ProtoMessage() {}

func (x *ListRecipesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecipesRequest.ProtoReflect.Descriptor instead.
func (*ListRecipesRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{17}
}

type ListRecipesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipes       []*RecipeSheet         `protobuf:"bytes,1,rep,name=recipes,proto3" json:"recipes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecipesResponse) Reset() {
	*x = ListRecipesResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecipesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecipesResponse) ProtoMessage() {}

func (x *ListRecipesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecipesResponse.ProtoReflect.Descriptor instead.
func (*ListRecipesResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{18}
}

func (x *ListRecipesResponse) GetRecipes() []*RecipeSheet {
	if x != nil {
		return x.Recipes
	}
	return nil
}

type GetRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRecipeRequest) Reset() {
	*x = GetRecipeRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecipeRequest) ProtoMessage() {}

func (x *GetRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRecipeRequest.ProtoReflect.Descriptor instead.
func (*GetRecipeRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{19}
}

func (x *GetRecipeRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

type CreateRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Portions      int32                  `protobuf:"varint,2,opt,name=portions,proto3" json:"portions,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Lines         []*RecipeLine          `protobuf:"bytes,4,rep,name=lines,proto3" json:"lines,omitempty"`
	Instructions  string                 `protobuf:"bytes,5,opt,name=instructions,proto3" json:"instructions,omitempty"`
	SalePrice     float64                `protobuf:"fixed64,6,opt,name=sale_price,json=salePrice,proto3" json:"sale_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRecipeRequest) Reset() {
	*x = CreateRecipeRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRecipeRequest) ProtoMessage() {}

func (x *CreateRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRecipeRequest.ProtoReflect.Descriptor instead.
func (*CreateRecipeRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{20}
}

func (x *CreateRecipeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateRecipeRequest) GetPortions() int32 {
	if x != nil {
		return x.Portions
	}
	return 0
}

func (x *CreateRecipeRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateRecipeRequest) GetLines() []*RecipeLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *CreateRecipeRequest) GetInstructions() string {
	if x != nil {
		return x.Instructions
	}
	return ""
}

func (x *CreateRecipeRequest) GetSalePrice() float64 {
	if x != nil {
		return x.SalePrice
	}
	return 0
}

type UpdateRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	Recipe        *CreateRecipeRequest   `protobuf:"bytes,2,opt,name=recipe,proto3" json:"recipe,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRecipeRequest) Reset() {
	*x = UpdateRecipeRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRecipeRequest) ProtoMessage() {}

func (x *UpdateRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRecipeRequest.ProtoReflect.Descriptor instead.
func (*UpdateRecipeRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{21}
}

func (x *UpdateRecipeRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

func (x *UpdateRecipeRequest) GetRecipe() *CreateRecipeRequest {
	if x != nil {
		return x.Recipe
	}
	return nil
}

type DeleteRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRecipeRequest) Reset() {
	*x = DeleteRecipeRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRecipeRequest) ProtoMessage() {}

func (x *DeleteRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRecipeRequest.ProtoReflect.Descriptor instead.
func (*DeleteRecipeRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{22}
}

func (x *DeleteRecipeRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

type DeleteRecipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRecipeResponse) Reset() {
	*x = DeleteRecipeResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRecipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRecipeResponse) ProtoMessage() {}

func (x *DeleteRecipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRecipeResponse.ProtoReflect.Descriptor instead.
func (*DeleteRecipeResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{23}
}

type RecordSaleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	PortionsSold  int32                  `protobuf:"varint,2,opt,name=portions_sold,json=portionsSold,proto3" json:"portions_sold,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordSaleRequest) Reset() {
	*x = RecordSaleRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordSaleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordSaleRequest) ProtoMessage() {}

func (x *RecordSaleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordSaleRequest.ProtoReflect.Descriptor instead.
func (*RecordSaleRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{24}
}

func (x *RecordSaleRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

func (x *RecordSaleRequest) GetPortionsSold() int32 {
	if x != nil {
		return x.PortionsSold
	}
	return 0
}

type RecordSaleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deducted      []string               `protobuf:"bytes,1,rep,name=deducted,proto3" json:"deducted,omitempty"` // ingredient names whose stock was adjusted
	Skipped       []string               `protobuf:"bytes,2,rep,name=skipped,proto3" json:"skipped,omitempty"`   // ingredient names absent from the catalog
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordSaleResponse) Reset() {
	*x = RecordSaleResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordSaleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordSaleResponse) ProtoMessage() {}

func (x *RecordSaleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordSaleResponse.ProtoReflect.Descriptor instead.
func (*RecordSaleResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{25}
}

func (x *RecordSaleResponse) GetDeducted() []string {
	if x != nil {
		return x.Deducted
	}
	return nil
}

func (x *RecordSaleResponse) GetSkipped() []string {
	if x != nil {
		return x.Skipped
	}
	return nil
}

type ParsedRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Quantity      *float64               `protobuf:"fixed64,2,opt,name=quantity,proto3,oneof" json:"quantity,omitempty"` // absent when the source line carried none
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Allergens     []string               `protobuf:"bytes,5,rep,name=allergens,proto3" json:"allergens,omitempty"`
	Confidence    float32                `protobuf:"fixed32,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsedRecord) Reset() {
	*x = ParsedRecord{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedRecord) ProtoMessage() {}

func (x *ParsedRecord) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedRecord.ProtoReflect.Descriptor instead.
func (*ParsedRecord) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{26}
}

func (x *ParsedRecord) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ParsedRecord) GetQuantity() float64 {
	if x != nil && x.Quantity != nil {
		return *x.Quantity
	}
	return 0
}

func (x *ParsedRecord) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *ParsedRecord) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *ParsedRecord) GetAllergens() []string {
	if x != nil {
		return x.Allergens
	}
	return nil
}

func (x *ParsedRecord) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ParsedIngredient struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsedIngredient) Reset() {
	*x = ParsedIngredient{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedIngredient) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedIngredient) ProtoMessage() {}

func (x *ParsedIngredient) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedIngredient.ProtoReflect.Descriptor instead.
func (*ParsedIngredient) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{27}
}

func (x *ParsedIngredient) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ParsedIngredient) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ParsedIngredient) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

type ParsedRecipe struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Portions      int32                  `protobuf:"varint,2,opt,name=portions,proto3" json:"portions,omitempty"`
	Ingredients   []*ParsedIngredient    `protobuf:"bytes,3,rep,name=ingredients,proto3" json:"ingredients,omitempty"`
	Instructions  string                 `protobuf:"bytes,4,opt,name=instructions,proto3" json:"instructions,omitempty"`
	Confidence    float32                `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsedRecipe) Reset() {
	*x = ParsedRecipe{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedRecipe) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedRecipe) ProtoMessage() {}

func (x *ParsedRecipe) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedRecipe.ProtoReflect.Descriptor instead.
func (*ParsedRecipe) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{28}
}

func (x *ParsedRecipe) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ParsedRecipe) GetPortions() int32 {
	if x != nil {
		return x.Portions
	}
	return 0
}

func (x *ParsedRecipe) GetIngredients() []*ParsedIngredient {
	if x != nil {
		return x.Ingredients
	}
	return nil
}

func (x *ParsedRecipe) GetInstructions() string {
	if x != nil {
		return x.Instructions
	}
	return ""
}

func (x *ParsedRecipe) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type PriceMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Existing      *CatalogEntry          `protobuf:"bytes,1,opt,name=existing,proto3" json:"existing,omitempty"`
	Incoming      *ParsedRecord          `protobuf:"bytes,2,opt,name=incoming,proto3" json:"incoming,omitempty"`
	PriceDiff     float64                `protobuf:"fixed64,3,opt,name=price_diff,json=priceDiff,proto3" json:"price_diff,omitempty"`
	PercentChange string                 `protobuf:"bytes,4,opt,name=percent_change,json=percentChange,proto3" json:"percent_change,omitempty"` // formatted, "n/a" when the old price is 0
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceMatch) Reset() {
	*x = PriceMatch{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceMatch) ProtoMessage() {}

func (x *PriceMatch) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceMatch.ProtoReflect.Descriptor instead.
func (*PriceMatch) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{29}
}

func (x *PriceMatch) GetExisting() *CatalogEntry {
	if x != nil {
		return x.Existing
	}
	return nil
}

func (x *PriceMatch) GetIncoming() *ParsedRecord {
	if x != nil {
		return x.Incoming
	}
	return nil
}

func (x *PriceMatch) GetPriceDiff() float64 {
	if x != nil {
		return x.PriceDiff
	}
	return 0
}

func (x *PriceMatch) GetPercentChange() string {
	if x != nil {
		return x.PercentChange
	}
	return ""
}

type RecipeMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Existing      *RecipeSheet           `protobuf:"bytes,1,opt,name=existing,proto3" json:"existing,omitempty"`
	Similarity    float64                `protobuf:"fixed64,2,opt,name=similarity,proto3" json:"similarity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecipeMatch) Reset() {
	*x = RecipeMatch{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecipeMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecipeMatch) ProtoMessage() {}

func (x *RecipeMatch) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecipeMatch.ProtoReflect.Descriptor instead.
func (*RecipeMatch) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{30}
}

func (x *RecipeMatch) GetExisting() *RecipeSheet {
	if x != nil {
		return x.Existing
	}
	return nil
}

func (x *RecipeMatch) GetSimilarity() float64 {
	if x != nil {
		return x.Similarity
	}
	return 0
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{31}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{32}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

type ImportPriceListRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportPriceListRequest) Reset() {
	*x = ImportPriceListRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportPriceListRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportPriceListRequest) ProtoMessage() {}

func (x *ImportPriceListRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportPriceListRequest.ProtoReflect.Descriptor instead.
func (*ImportPriceListRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{33}
}

func (x *ImportPriceListRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ImportPriceListResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Records        []*ParsedRecord        `protobuf:"bytes,2,rep,name=records,proto3" json:"records,omitempty"`
	Duplicates     []*PriceMatch          `protobuf:"bytes,3,rep,name=duplicates,proto3" json:"duplicates,omitempty"`
	UnmatchedLines int32                  `protobuf:"varint,4,opt,name=unmatched_lines,json=unmatchedLines,proto3" json:"unmatched_lines,omitempty"`
	Method         string                 `protobuf:"bytes,5,opt,name=method,proto3" json:"method,omitempty"`
	Pages          int32                  `protobuf:"varint,6,opt,name=pages,proto3" json:"pages,omitempty"`
	Confidence     float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ImportPriceListResponse) Reset() {
	*x = ImportPriceListResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportPriceListResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportPriceListResponse) ProtoMessage() {}

func (x *ImportPriceListResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportPriceListResponse.ProtoReflect.Descriptor instead.
func (*ImportPriceListResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{34}
}

func (x *ImportPriceListResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ImportPriceListResponse) GetRecords() []*ParsedRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *ImportPriceListResponse) GetDuplicates() []*PriceMatch {
	if x != nil {
		return x.Duplicates
	}
	return nil
}

func (x *ImportPriceListResponse) GetUnmatchedLines() int32 {
	if x != nil {
		return x.UnmatchedLines
	}
	return 0
}

func (x *ImportPriceListResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ImportPriceListResponse) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ImportPriceListResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ImportRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportRecipeRequest) Reset() {
	*x = ImportRecipeRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportRecipeRequest) ProtoMessage() {}

func (x *ImportRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportRecipeRequest.ProtoReflect.Descriptor instead.
func (*ImportRecipeRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{35}
}

func (x *ImportRecipeRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ImportRecipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Recipe        *ParsedRecipe          `protobuf:"bytes,2,opt,name=recipe,proto3" json:"recipe,omitempty"`
	Duplicates    []*RecipeMatch         `protobuf:"bytes,3,rep,name=duplicates,proto3" json:"duplicates,omitempty"`
	Method        string                 `protobuf:"bytes,4,opt,name=method,proto3" json:"method,omitempty"`
	Pages         int32                  `protobuf:"varint,5,opt,name=pages,proto3" json:"pages,omitempty"`
	Confidence    float32                `protobuf:"fixed32,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportRecipeResponse) Reset() {
	*x = ImportRecipeResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportRecipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportRecipeResponse) ProtoMessage() {}

func (x *ImportRecipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportRecipeResponse.ProtoReflect.Descriptor instead.
func (*ImportRecipeResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{36}
}

func (x *ImportRecipeResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ImportRecipeResponse) GetRecipe() *ParsedRecipe {
	if x != nil {
		return x.Recipe
	}
	return nil
}

func (x *ImportRecipeResponse) GetDuplicates() []*RecipeMatch {
	if x != nil {
		return x.Duplicates
	}
	return nil
}

func (x *ImportRecipeResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ImportRecipeResponse) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ImportRecipeResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type PriceUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,2,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceUpdate) Reset() {
	*x = PriceUpdate{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceUpdate) ProtoMessage() {}

func (x *PriceUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceUpdate.ProtoReflect.Descriptor instead.
func (*PriceUpdate) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{37}
}

func (x *PriceUpdate) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *PriceUpdate) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

type CommitPriceListRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Reviewed additions as a JSON array; validated against the records
	// schema before anything is written.
	RecordsJson   string         `protobuf:"bytes,1,opt,name=records_json,json=recordsJson,proto3" json:"records_json,omitempty"`
	Updates       []*PriceUpdate `protobuf:"bytes,2,rep,name=updates,proto3" json:"updates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitPriceListRequest) Reset() {
	*x = CommitPriceListRequest{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitPriceListRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitPriceListRequest) ProtoMessage() {}

func (x *CommitPriceListRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitPriceListRequest.ProtoReflect.Descriptor instead.
func (*CommitPriceListRequest) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{38}
}

func (x *CommitPriceListRequest) GetRecordsJson() string {
	if x != nil {
		return x.RecordsJson
	}
	return ""
}

func (x *CommitPriceListRequest) GetUpdates() []*PriceUpdate {
	if x != nil {
		return x.Updates
	}
	return nil
}

type CommitPriceListResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Created       int32                  `protobuf:"varint,1,opt,name=created,proto3" json:"created,omitempty"`
	Updated       int32                  `protobuf:"varint,2,opt,name=updated,proto3" json:"updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitPriceListResponse) Reset() {
	*x = CommitPriceListResponse{}
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitPriceListResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitPriceListResponse) ProtoMessage() {}

func (x *CommitPriceListResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mercuriale_v1_mercuriale_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitPriceListResponse.ProtoReflect.Descriptor instead.
func (*CommitPriceListResponse) Descriptor() ([]byte, []int) {
	return file_mercuriale_v1_mercuriale_proto_rawDescGZIP(), []int{39}
}

func (x *CommitPriceListResponse) GetCreated() int32 {
	if x != nil {
		return x.Created
	}
	return 0
}

func (x *CommitPriceListResponse) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

var File_mercuriale_v1_mercuriale_proto protoreflect.FileDescriptor

const file_mercuriale_v1_mercuriale_proto_rawDesc = "" +
	"\n" +
	"\x1emercuriale/v1/mercuriale.proto\x12\rmercuriale.v1\"\xe8\x02\n" +
	"\fCatalogEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\x01R\tunitPrice\x12\x1c\n" +
	"\tallergens\x18\x05 \x03(\tR\tallergens\x12#\n" +
	"\rcurrent_stock\x18\x06 \x01(\x01R\fcurrentStock\x12\x1b\n" +
	"\tmin_stock\x18\a \x01(\x01R\bminStock\x12%\n" +
	"\x0ecritical_stock\x18\b \x01(\x01R\rcriticalStock\x12\x1b\n" +
	"\tmax_stock\x18\t \x01(\x01R\bmaxStock\x12\x1f\n" +
	"\vstock_level\x18\n" +
	" \x01(\tR\n" +
	"stockLevel\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xab\x01\n" +
	"\rStockMovement\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bentry_id\x18\x02 \x01(\tR\aentryId\x12\x1c\n" +
	"\tdirection\x18\x03 \x01(\tR\tdirection\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x01R\bquantity\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\x14\n" +
	"\x12ListEntriesRequest\"L\n" +
	"\x13ListEntriesResponse\x125\n" +
	"\aentries\x18\x01 \x03(\v2\x1b.mercuriale.v1.CatalogEntryR\aentries\",\n" +
	"\x0fGetEntryRequest\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\"\xff\x01\n" +
	"\x12CreateEntryRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04unit\x18\x02 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x1c\n" +
	"\tallergens\x18\x04 \x03(\tR\tallergens\x12#\n" +
	"\rcurrent_stock\x18\x05 \x01(\x01R\fcurrentStock\x12\x1b\n" +
	"\tmin_stock\x18\x06 \x01(\x01R\bminStock\x12%\n" +
	"\x0ecritical_stock\x18\a \x01(\x01R\rcriticalStock\x12\x1b\n" +
	"\tmax_stock\x18\b \x01(\x01R\bmaxStock\"N\n" +
	"\x12UpdatePriceRequest\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x02 \x01(\x01R\tunitPrice\"\x92\x01\n" +
	"\x14SetThresholdsRequest\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12%\n" +
	"\x0ecritical_stock\x18\x02 \x01(\x01R\rcriticalStock\x12\x1b\n" +
	"\tmin_stock\x18\x03 \x01(\x01R\bminStock\x12\x1b\n" +
	"\tmax_stock\x18\x04 \x01(\x01R\bmaxStock\"/\n" +
	"\x12DeleteEntryRequest\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\"\x15\n" +
	"\x13DeleteEntryResponse\"\x84\x01\n" +
	"\x15RecordMovementRequest\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12\x1c\n" +
	"\tdirection\x18\x02 \x01(\tR\tdirection\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x01R\bquantity\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"1\n" +
	"\x14ListMovementsRequest\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\"S\n" +
	"\x15ListMovementsResponse\x12:\n" +
	"\tmovements\x18\x01 \x03(\v2\x1c.mercuriale.v1.StockMovementR\tmovements\"1\n" +
	"\x14ExportCatalogRequest\x12\x19\n" +
	"\bout_path\x18\x01 \x01(\tR\aoutPath\"H\n" +
	"\x15ExportCatalogResponse\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\x05R\browCount\"o\n" +
	"\n" +
	"RecipeLine\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\x01R\tunitPrice\"\xaf\x02\n" +
	"\vRecipeSheet\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bportions\x18\x03 \x01(\x05R\bportions\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12/\n" +
	"\x05lines\x18\x05 \x03(\v2\x19.mercuriale.v1.RecipeLineR\x05lines\x12\"\n" +
	"\finstructions\x18\x06 \x01(\tR\finstructions\x12\x12\n" +
	"\x04cost\x18\a \x01(\x01R\x04cost\x12\x1d\n" +
	"\n" +
	"sale_price\x18\b \x01(\x01R\tsalePrice\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\x14\n" +
	"\x12ListRecipesRequest\"K\n" +
	"\x13ListRecipesResponse\x124\n" +
	"\arecipes\x18\x01 \x03(\v2\x1a.mercuriale.v1.RecipeSheetR\arecipes\"/\n" +
	"\x10GetRecipeRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\"\xd5\x01\n" +
	"\x13CreateRecipeRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bportions\x18\x02 \x01(\x05R\bportions\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12/\n" +
	"\x05lines\x18\x04 \x03(\v2\x19.mercuriale.v1.RecipeLineR\x05lines\x12\"\n" +
	"\finstructions\x18\x05 \x01(\tR\finstructions\x12\x1d\n" +
	"\n" +
	"sale_price\x18\x06 \x01(\x01R\tsalePrice\"n\n" +
	"\x13UpdateRecipeRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\x12:\n" +
	"\x06recipe\x18\x02 \x01(\v2\".mercuriale.v1.CreateRecipeRequestR\x06recipe\"2\n" +
	"\x13DeleteRecipeRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\"\x16\n" +
	"\x14DeleteRecipeResponse\"U\n" +
	"\x11RecordSaleRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\x12#\n" +
	"\rportions_sold\x18\x02 \x01(\x05R\fportionsSold\"J\n" +
	"\x12RecordSaleResponse\x12\x1a\n" +
	"\bdeducted\x18\x01 \x03(\tR\bdeducted\x12\x18\n" +
	"\askipped\x18\x02 \x03(\tR\askipped\"\xc1\x01\n" +
	"\fParsedRecord\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\bquantity\x18\x02 \x01(\x01H\x00R\bquantity\x88\x01\x01\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\x01R\tunitPrice\x12\x1c\n" +
	"\tallergens\x18\x05 \x03(\tR\tallergens\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x02R\n" +
	"confidenceB\v\n" +
	"\t_quantity\"V\n" +
	"\x10ParsedIngredient\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\"\xc5\x01\n" +
	"\fParsedRecipe\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bportions\x18\x02 \x01(\x05R\bportions\x12A\n" +
	"\vingredients\x18\x03 \x03(\v2\x1f.mercuriale.v1.ParsedIngredientR\vingredients\x12\"\n" +
	"\finstructions\x18\x04 \x01(\tR\finstructions\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\"\xc4\x01\n" +
	"\n" +
	"PriceMatch\x127\n" +
	"\bexisting\x18\x01 \x01(\v2\x1b.mercuriale.v1.CatalogEntryR\bexisting\x127\n" +
	"\bincoming\x18\x02 \x01(\v2\x1b.mercuriale.v1.ParsedRecordR\bincoming\x12\x1d\n" +
	"\n" +
	"price_diff\x18\x03 \x01(\x01R\tpriceDiff\x12%\n" +
	"\x0epercent_change\x18\x04 \x01(\tR\rpercentChange\"e\n" +
	"\vRecipeMatch\x126\n" +
	"\bexisting\x18\x01 \x01(\v2\x1a.mercuriale.v1.RecipeSheetR\bexisting\x12\x1e\n" +
	"\n" +
	"similarity\x18\x02 \x01(\x01R\n" +
	"similarity\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xd4\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\"1\n" +
	"\x16ImportPriceListRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\x99\x02\n" +
	"\x17ImportPriceListResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x125\n" +
	"\arecords\x18\x02 \x03(\v2\x1b.mercuriale.v1.ParsedRecordR\arecords\x129\n" +
	"\n" +
	"duplicates\x18\x03 \x03(\v2\x19.mercuriale.v1.PriceMatchR\n" +
	"duplicates\x12'\n" +
	"\x0funmatched_lines\x18\x04 \x01(\x05R\x0eunmatchedLines\x12\x16\n" +
	"\x06method\x18\x05 \x01(\tR\x06method\x12\x14\n" +
	"\x05pages\x18\x06 \x01(\x05R\x05pages\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\".\n" +
	"\x13ImportRecipeRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\xec\x01\n" +
	"\x14ImportRecipeResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x123\n" +
	"\x06recipe\x18\x02 \x01(\v2\x1b.mercuriale.v1.ParsedRecipeR\x06recipe\x12:\n" +
	"\n" +
	"duplicates\x18\x03 \x03(\v2\x1a.mercuriale.v1.RecipeMatchR\n" +
	"duplicates\x12\x16\n" +
	"\x06method\x18\x04 \x01(\tR\x06method\x12\x14\n" +
	"\x05pages\x18\x05 \x01(\x05R\x05pages\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x02R\n" +
	"confidence\"G\n" +
	"\vPriceUpdate\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x02 \x01(\x01R\tunitPrice\"q\n" +
	"\x16CommitPriceListRequest\x12!\n" +
	"\frecords_json\x18\x01 \x01(\tR\vrecordsJson\x124\n" +
	"\aupdates\x18\x02 \x03(\v2\x1a.mercuriale.v1.PriceUpdateR\aupdates\"M\n" +
	"\x17CommitPriceListResponse\x12\x18\n" +
	"\acreated\x18\x01 \x01(\x05R\acreated\x12\x18\n" +
	"\aupdated\x18\x02 \x01(\x05R\aupdated2\x84\x06\n" +
	"\x0eCatalogService\x12T\n" +
	"\vListEntries\x12!.mercuriale.v1.ListEntriesRequest\x1a\".mercuriale.v1.ListEntriesResponse\x12G\n" +
	"\bGetEntry\x12\x1e.mercuriale.v1.GetEntryRequest\x1a\x1b.mercuriale.v1.CatalogEntry\x12M\n" +
	"\vCreateEntry\x12!.mercuriale.v1.CreateEntryRequest\x1a\x1b.mercuriale.v1.CatalogEntry\x12M\n" +
	"\vUpdatePrice\x12!.mercuriale.v1.UpdatePriceRequest\x1a\x1b.mercuriale.v1.CatalogEntry\x12Q\n" +
	"\rSetThresholds\x12#.mercuriale.v1.SetThresholdsRequest\x1a\x1b.mercuriale.v1.CatalogEntry\x12T\n" +
	"\vDeleteEntry\x12!.mercuriale.v1.DeleteEntryRequest\x1a\".mercuriale.v1.DeleteEntryResponse\x12T\n" +
	"\x0eRecordMovement\x12$.mercuriale.v1.RecordMovementRequest\x1a\x1c.mercuriale.v1.StockMovement\x12Z\n" +
	"\rListMovements\x12#.mercuriale.v1.ListMovementsRequest\x1a$.mercuriale.v1.ListMovementsResponse\x12Z\n" +
	"\rExportCatalog\x12#.mercuriale.v1.ExportCatalogRequest\x1a$.mercuriale.v1.ExportCatalogResponse2\xfb\x03\n" +
	"\rRecipeService\x12T\n" +
	"\vListRecipes\x12!.mercuriale.v1.ListRecipesRequest\x1a\".mercuriale.v1.ListRecipesResponse\x12H\n" +
	"\tGetRecipe\x12\x1f.mercuriale.v1.GetRecipeRequest\x1a\x1a.mercuriale.v1.RecipeSheet\x12N\n" +
	"\fCreateRecipe\x12\".mercuriale.v1.CreateRecipeRequest\x1a\x1a.mercuriale.v1.RecipeSheet\x12N\n" +
	"\fUpdateRecipe\x12\".mercuriale.v1.UpdateRecipeRequest\x1a\x1a.mercuriale.v1.RecipeSheet\x12W\n" +
	"\fDeleteRecipe\x12\".mercuriale.v1.DeleteRecipeRequest\x1a#.mercuriale.v1.DeleteRecipeResponse\x12Q\n" +
	"\n" +
	"RecordSale\x12 .mercuriale.v1.RecordSaleRequest\x1a!.mercuriale.v1.RecordSaleResponse2\xfb\x02\n" +
	"\rImportService\x12M\n" +
	"\n" +
	"IngestFile\x12 .mercuriale.v1.IngestFileRequest\x1a\x1d.mercuriale.v1.IngestResponse\x12`\n" +
	"\x0fImportPriceList\x12%.mercuriale.v1.ImportPriceListRequest\x1a&.mercuriale.v1.ImportPriceListResponse\x12W\n" +
	"\fImportRecipe\x12\".mercuriale.v1.ImportRecipeRequest\x1a#.mercuriale.v1.ImportRecipeResponse\x12`\n" +
	"\x0fCommitPriceList\x12%.mercuriale.v1.CommitPriceListRequest\x1a&.mercuriale.v1.CommitPriceListResponseBFZDgithub.com/cuisinehq/mercuriale/gen/proto/mercuriale/v1;mercurialev1b\x06proto3"

var (
	file_mercuriale_v1_mercuriale_proto_rawDescOnce sync.Once
	file_mercuriale_v1_mercuriale_proto_rawDescData []byte
)

func file_mercuriale_v1_mercuriale_proto_rawDescGZIP() []byte {
	file_mercuriale_v1_mercuriale_proto_rawDescOnce.Do(func() {
		file_mercuriale_v1_mercuriale_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mercuriale_v1_mercuriale_proto_rawDesc), len(file_mercuriale_v1_mercuriale_proto_rawDesc)))
	})
	return file_mercuriale_v1_mercuriale_proto_rawDescData
}

var file_mercuriale_v1_mercuriale_proto_msgTypes = make([]protoimpl.MessageInfo, 40)
var file_mercuriale_v1_mercuriale_proto_goTypes = []any{
	(*CatalogEntry)(nil),            // 0: mercuriale.v1.CatalogEntry
	(*StockMovement)(nil),           // 1: mercuriale.v1.StockMovement
	(*ListEntriesRequest)(nil),      // 2: mercuriale.v1.ListEntriesRequest
	(*ListEntriesResponse)(nil),     // 3: mercuriale.v1.ListEntriesResponse
	(*GetEntryRequest)(nil),         // 4: mercuriale.v1.GetEntryRequest
	(*CreateEntryRequest)(nil),      // 5: mercuriale.v1.CreateEntryRequest
	(*UpdatePriceRequest)(nil),      // 6: mercuriale.v1.UpdatePriceRequest
	(*SetThresholdsRequest)(nil),    // 7: mercuriale.v1.SetThresholdsRequest
	(*DeleteEntryRequest)(nil),      // 8: mercuriale.v1.DeleteEntryRequest
	(*DeleteEntryResponse)(nil),     // 9: mercuriale.v1.DeleteEntryResponse
	(*RecordMovementRequest)(nil),   // 10: mercuriale.v1.RecordMovementRequest
	(*ListMovementsRequest)(nil),    // 11: mercuriale.v1.ListMovementsRequest
	(*ListMovementsResponse)(nil),   // 12: mercuriale.v1.ListMovementsResponse
	(*ExportCatalogRequest)(nil),    // 13: mercuriale.v1.ExportCatalogRequest
	(*ExportCatalogResponse)(nil),   // 14: mercuriale.v1.ExportCatalogResponse
	(*RecipeLine)(nil),              // 15: mercuriale.v1.RecipeLine
	(*RecipeSheet)(nil),             // 16: mercuriale.v1.RecipeSheet
	(*ListRecipesRequest)(nil),      // 17: mercuriale.v1.ListRecipesRequest
	(*ListRecipesResponse)(nil),     // 18: mercuriale.v1.ListRecipesResponse
	(*GetRecipeRequest)(nil),        // 19: mercuriale.v1.GetRecipeRequest
	(*CreateRecipeRequest)(nil),     // 20: mercuriale.v1.CreateRecipeRequest
	(*UpdateRecipeRequest)(nil),     // 21: mercuriale.v1.UpdateRecipeRequest
	(*DeleteRecipeRequest)(nil),     // 22: mercuriale.v1.DeleteRecipeRequest
	(*DeleteRecipeResponse)(nil),    // 23: mercuriale.v1.DeleteRecipeResponse
	(*RecordSaleRequest)(nil),       // 24: mercuriale.v1.RecordSaleRequest
	(*RecordSaleResponse)(nil),      // 25: mercuriale.v1.RecordSaleResponse
	(*ParsedRecord)(nil),            // 26: mercuriale.v1.ParsedRecord
	(*ParsedIngredient)(nil),        // 27: mercuriale.v1.ParsedIngredient
	(*ParsedRecipe)(nil),            // 28: mercuriale.v1.ParsedRecipe
	(*PriceMatch)(nil),              // 29: mercuriale.v1.PriceMatch
	(*RecipeMatch)(nil),             // 30: mercuriale.v1.RecipeMatch
	(*IngestFileRequest)(nil),       // 31: mercuriale.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 32: mercuriale.v1.IngestResponse
	(*ImportPriceListRequest)(nil),  // 33: mercuriale.v1.ImportPriceListRequest
	(*ImportPriceListResponse)(nil), // 34: mercuriale.v1.ImportPriceListResponse
	(*ImportRecipeRequest)(nil),     // 35: mercuriale.v1.ImportRecipeRequest
	(*ImportRecipeResponse)(nil),    // 36: mercuriale.v1.ImportRecipeResponse
	(*PriceUpdate)(nil),             // 37: mercuriale.v1.PriceUpdate
	(*CommitPriceListRequest)(nil),  // 38: mercuriale.v1.CommitPriceListRequest
	(*CommitPriceListResponse)(nil), // 39: mercuriale.v1.CommitPriceListResponse
}
var file_mercuriale_v1_mercuriale_proto_depIdxs = []int32{
	0,  // 0: mercuriale.v1.ListEntriesResponse.entries:type_name -> mercuriale.v1.CatalogEntry
	1,  // 1: mercuriale.v1.ListMovementsResponse.movements:type_name -> mercuriale.v1.StockMovement
	15, // 2: mercuriale.v1.RecipeSheet.lines:type_name -> mercuriale.v1.RecipeLine
	16, // 3: mercuriale.v1.ListRecipesResponse.recipes:type_name -> mercuriale.v1.RecipeSheet
	15, // 4: mercuriale.v1.CreateRecipeRequest.lines:type_name -> mercuriale.v1.RecipeLine
	20, // 5: mercuriale.v1.UpdateRecipeRequest.recipe:type_name -> mercuriale.v1.CreateRecipeRequest
	27, // 6: mercuriale.v1.ParsedRecipe.ingredients:type_name -> mercuriale.v1.ParsedIngredient
	0,  // 7: mercuriale.v1.PriceMatch.existing:type_name -> mercuriale.v1.CatalogEntry
	26, // 8: mercuriale.v1.PriceMatch.incoming:type_name -> mercuriale.v1.ParsedRecord
	16, // 9: mercuriale.v1.RecipeMatch.existing:type_name -> mercuriale.v1.RecipeSheet
	26, // 10: mercuriale.v1.ImportPriceListResponse.records:type_name -> mercuriale.v1.ParsedRecord
	29, // 11: mercuriale.v1.ImportPriceListResponse.duplicates:type_name -> mercuriale.v1.PriceMatch
	28, // 12: mercuriale.v1.ImportRecipeResponse.recipe:type_name -> mercuriale.v1.ParsedRecipe
	30, // 13: mercuriale.v1.ImportRecipeResponse.duplicates:type_name -> mercuriale.v1.RecipeMatch
	37, // 14: mercuriale.v1.CommitPriceListRequest.updates:type_name -> mercuriale.v1.PriceUpdate
	2,  // 15: mercuriale.v1.CatalogService.ListEntries:input_type -> mercuriale.v1.ListEntriesRequest
	4,  // 16: mercuriale.v1.CatalogService.GetEntry:input_type -> mercuriale.v1.GetEntryRequest
	5,  // 17: mercuriale.v1.CatalogService.CreateEntry:input_type -> mercuriale.v1.CreateEntryRequest
	6,  // 18: mercuriale.v1.CatalogService.UpdatePrice:input_type -> mercuriale.v1.UpdatePriceRequest
	7,  // 19: mercuriale.v1.CatalogService.SetThresholds:input_type -> mercuriale.v1.SetThresholdsRequest
	8,  // 20: mercuriale.v1.CatalogService.DeleteEntry:input_type -> mercuriale.v1.DeleteEntryRequest
	10, // 21: mercuriale.v1.CatalogService.RecordMovement:input_type -> mercuriale.v1.RecordMovementRequest
	11, // 22: mercuriale.v1.CatalogService.ListMovements:input_type -> mercuriale.v1.ListMovementsRequest
	13, // 23: mercuriale.v1.CatalogService.ExportCatalog:input_type -> mercuriale.v1.ExportCatalogRequest
	17, // 24: mercuriale.v1.RecipeService.ListRecipes:input_type -> mercuriale.v1.ListRecipesRequest
	19, // 25: mercuriale.v1.RecipeService.GetRecipe:input_type -> mercuriale.v1.GetRecipeRequest
	20, // 26: mercuriale.v1.RecipeService.CreateRecipe:input_type -> mercuriale.v1.CreateRecipeRequest
	21, // 27: mercuriale.v1.RecipeService.UpdateRecipe:input_type -> mercuriale.v1.UpdateRecipeRequest
	22, // 28: mercuriale.v1.RecipeService.DeleteRecipe:input_type -> mercuriale.v1.DeleteRecipeRequest
	24, // 29: mercuriale.v1.RecipeService.RecordSale:input_type -> mercuriale.v1.RecordSaleRequest
	31, // 30: mercuriale.v1.ImportService.IngestFile:input_type -> mercuriale.v1.IngestFileRequest
	33, // 31: mercuriale.v1.ImportService.ImportPriceList:input_type -> mercuriale.v1.ImportPriceListRequest
	35, // 32: mercuriale.v1.ImportService.ImportRecipe:input_type -> mercuriale.v1.ImportRecipeRequest
	38, // 33: mercuriale.v1.ImportService.CommitPriceList:input_type -> mercuriale.v1.CommitPriceListRequest
	3,  // 34: mercuriale.v1.CatalogService.ListEntries:output_type -> mercuriale.v1.ListEntriesResponse
	0,  // 35: mercuriale.v1.CatalogService.GetEntry:output_type -> mercuriale.v1.CatalogEntry
	0,  // 36: mercuriale.v1.CatalogService.CreateEntry:output_type -> mercuriale.v1.CatalogEntry
	0,  // 37: mercuriale.v1.CatalogService.UpdatePrice:output_type -> mercuriale.v1.CatalogEntry
	0,  // 38: mercuriale.v1.CatalogService.SetThresholds:output_type -> mercuriale.v1.CatalogEntry
	9,  // 39: mercuriale.v1.CatalogService.DeleteEntry:output_type -> mercuriale.v1.DeleteEntryResponse
	1,  // 40: mercuriale.v1.CatalogService.RecordMovement:output_type -> mercuriale.v1.StockMovement
	12, // 41: mercuriale.v1.CatalogService.ListMovements:output_type -> mercuriale.v1.ListMovementsResponse
	14, // 42: mercuriale.v1.CatalogService.ExportCatalog:output_type -> mercuriale.v1.ExportCatalogResponse
	18, // 43: mercuriale.v1.RecipeService.ListRecipes:output_type -> mercuriale.v1.ListRecipesResponse
	16, // 44: mercuriale.v1.RecipeService.GetRecipe:output_type -> mercuriale.v1.RecipeSheet
	16, // 45: mercuriale.v1.RecipeService.CreateRecipe:output_type -> mercuriale.v1.RecipeSheet
	16, // 46: mercuriale.v1.RecipeService.UpdateRecipe:output_type -> mercuriale.v1.RecipeSheet
	23, // 47: mercuriale.v1.RecipeService.DeleteRecipe:output_type -> mercuriale.v1.DeleteRecipeResponse
	25, // 48: mercuriale.v1.RecipeService.RecordSale:output_type -> mercuriale.v1.RecordSaleResponse
	32, // 49: mercuriale.v1.ImportService.IngestFile:output_type -> mercuriale.v1.IngestResponse
	34, // 50: mercuriale.v1.ImportService.ImportPriceList:output_type -> mercuriale.v1.ImportPriceListResponse
	36, // 51: mercuriale.v1.ImportService.ImportRecipe:output_type -> mercuriale.v1.ImportRecipeResponse
	39, // 52: mercuriale.v1.ImportService.CommitPriceList:output_type -> mercuriale.v1.CommitPriceListResponse
	34, // [34:53] is the sub-list for method output_type
	15, // [15:34] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_mercuriale_v1_mercuriale_proto_init() }
func file_mercuriale_v1_mercuriale_proto_init() {
	if File_mercuriale_v1_mercuriale_proto != nil {
		return
	}
	file_mercuriale_v1_mercuriale_proto_msgTypes[26].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mercuriale_v1_mercuriale_proto_rawDesc), len(file_mercuriale_v1_mercuriale_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   40,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_mercuriale_v1_mercuriale_proto_goTypes,
		DependencyIndexes: file_mercuriale_v1_mercuriale_proto_depIdxs,
		MessageInfos:      file_mercuriale_v1_mercuriale_proto_msgTypes,
	}.Build()
	File_mercuriale_v1_mercuriale_proto = out.File
	file_mercuriale_v1_mercuriale_proto_goTypes = nil
	file_mercuriale_v1_mercuriale_proto_depIdxs = nil
}
