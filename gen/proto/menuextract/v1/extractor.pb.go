// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: menuextract/v1/extractor.proto

package menuextractv1

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

// A source document to pull a menu from. The URL must be fetchable by the
// server over HTTP(S).
type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Document) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Document) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type StartExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Documents     []*Document            `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartExtractionRequest) Reset() {
	*x = StartExtractionRequest{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartExtractionRequest) ProtoMessage() {}

func (x *StartExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartExtractionRequest.ProtoReflect.Descriptor instead.
func (*StartExtractionRequest) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{1}
}

func (x *StartExtractionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *StartExtractionRequest) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type StartExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartExtractionResponse) Reset() {
	*x = StartExtractionResponse{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartExtractionResponse) ProtoMessage() {}

func (x *StartExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartExtractionResponse.ProtoReflect.Descriptor instead.
func (*StartExtractionResponse) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{2}
}

func (x *StartExtractionResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StartExtractionResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type Job struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name         string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Status       string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt    string                 `protobuf:"bytes,4,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt   string                 `protobuf:"bytes,5,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	// Terminal results payload as JSON; empty until the job finishes.
	ResultsJson   string `protobuf:"bytes,7,opt,name=results_json,json=resultsJson,proto3" json:"results_json,omitempty"`
	CreatedAt     string `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{4}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetResultsJson() string {
	if x != nil {
		return x.ResultsJson
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportMenuRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMenuRequest) Reset() {
	*x = ExportMenuRequest{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMenuRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMenuRequest) ProtoMessage() {}

func (x *ExportMenuRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMenuRequest.ProtoReflect.Descriptor instead.
func (*ExportMenuRequest) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{6}
}

func (x *ExportMenuRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportMenuResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMenuResponse) Reset() {
	*x = ExportMenuResponse{}
	mi := &file_menuextract_v1_extractor_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMenuResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMenuResponse) ProtoMessage() {}

func (x *ExportMenuResponse) ProtoReflect() protoreflect.Message {
	mi := &file_menuextract_v1_extractor_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMenuResponse.ProtoReflect.Descriptor instead.
func (*ExportMenuResponse) Descriptor() ([]byte, []int) {
	return file_menuextract_v1_extractor_proto_rawDescGZIP(), []int{7}
}

func (x *ExportMenuResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_menuextract_v1_extractor_proto protoreflect.FileDescriptor

const file_menuextract_v1_extractor_proto_rawDesc = "" +
	"\n" +
	"\x1emenuextract/v1/extractor.proto\x12\x0emenuextract.v1\"M\n" +
	"\bDocument\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\"d\n" +
	"\x16StartExtractionRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x126\n" +
	"\tdocuments\x18\x02 \x03(\v2\x18.menuextract.v1.DocumentR\tdocuments\"H\n" +
	"\x17StartExtractionResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x87\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x04 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x05 \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12!\n" +
	"\fresults_json\x18\a \x01(\tR\vresultsJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"7\n" +
	"\x0eGetJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.menuextract.v1.JobR\x03job\"*\n" +
	"\x11ExportMenuRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"(\n" +
	"\x12ExportMenuResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc0\x01\n" +
	"\x11ExtractionService\x12b\n" +
	"\x0fStartExtraction\x12&.menuextract.v1.StartExtractionRequest\x1a'.menuextract.v1.StartExtractionResponse\x12G\n" +
	"\x06GetJob\x12\x1d.menuextract.v1.GetJobRequest\x1a\x1e.menuextract.v1.GetJobResponse2d\n" +
	"\rExportService\x12S\n" +
	"\n" +
	"ExportMenu\x12!.menuextract.v1.ExportMenuRequest\x1a\".menuextract.v1.ExportMenuResponseBLZJgithub.com/platewise/menu-extractor/gen/proto/menuextract/v1;menuextractv1b\x06proto3"

var (
	file_menuextract_v1_extractor_proto_rawDescOnce sync.Once
	file_menuextract_v1_extractor_proto_rawDescData []byte
)

func file_menuextract_v1_extractor_proto_rawDescGZIP() []byte {
	file_menuextract_v1_extractor_proto_rawDescOnce.Do(func() {
		file_menuextract_v1_extractor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_menuextract_v1_extractor_proto_rawDesc), len(file_menuextract_v1_extractor_proto_rawDesc)))
	})
	return file_menuextract_v1_extractor_proto_rawDescData
}

var file_menuextract_v1_extractor_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_menuextract_v1_extractor_proto_goTypes = []any{
	(*Document)(nil),                // 0: menuextract.v1.Document
	(*StartExtractionRequest)(nil),  // 1: menuextract.v1.StartExtractionRequest
	(*StartExtractionResponse)(nil), // 2: menuextract.v1.StartExtractionResponse
	(*GetJobRequest)(nil),           // 3: menuextract.v1.GetJobRequest
	(*Job)(nil),                     // 4: menuextract.v1.Job
	(*GetJobResponse)(nil),          // 5: menuextract.v1.GetJobResponse
	(*ExportMenuRequest)(nil),       // 6: menuextract.v1.ExportMenuRequest
	(*ExportMenuResponse)(nil),      // 7: menuextract.v1.ExportMenuResponse
}
var file_menuextract_v1_extractor_proto_depIdxs = []int32{
	0, // 0: menuextract.v1.StartExtractionRequest.documents:type_name -> menuextract.v1.Document
	4, // 1: menuextract.v1.GetJobResponse.job:type_name -> menuextract.v1.Job
	1, // 2: menuextract.v1.ExtractionService.StartExtraction:input_type -> menuextract.v1.StartExtractionRequest
	3, // 3: menuextract.v1.ExtractionService.GetJob:input_type -> menuextract.v1.GetJobRequest
	6, // 4: menuextract.v1.ExportService.ExportMenu:input_type -> menuextract.v1.ExportMenuRequest
	2, // 5: menuextract.v1.ExtractionService.StartExtraction:output_type -> menuextract.v1.StartExtractionResponse
	5, // 6: menuextract.v1.ExtractionService.GetJob:output_type -> menuextract.v1.GetJobResponse
	7, // 7: menuextract.v1.ExportService.ExportMenu:output_type -> menuextract.v1.ExportMenuResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_menuextract_v1_extractor_proto_init() }
func file_menuextract_v1_extractor_proto_init() {
	if File_menuextract_v1_extractor_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_menuextract_v1_extractor_proto_rawDesc), len(file_menuextract_v1_extractor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_menuextract_v1_extractor_proto_goTypes,
		DependencyIndexes: file_menuextract_v1_extractor_proto_depIdxs,
		MessageInfos:      file_menuextract_v1_extractor_proto_msgTypes,
	}.Build()
	File_menuextract_v1_extractor_proto = out.File
	file_menuextract_v1_extractor_proto_goTypes = nil
	file_menuextract_v1_extractor_proto_depIdxs = nil
}
