package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatboard/internal/config"
	"seatboard/internal/model"
	"seatboard/internal/service/calculator"
	"seatboard/internal/service/excel"
	"seatboard/internal/service/store"
)

// Handlers API处理器
type Handlers struct {
	store    *store.MemoryStore
	engine   *calculator.Engine
	exporter *excel.Exporter

	adjuster   *calculator.Adjuster
	adjusterMu sync.RWMutex
	business   config.BusinessConfig

	downloads *exportDownloadStore
}

// NewHandlers 创建处理器
func NewHandlers(st *store.MemoryStore, business config.BusinessConfig) *Handlers {
	return &Handlers{
		store:     st,
		engine:    calculator.NewEngine(),
		exporter:  excel.NewExporter(),
		adjuster:  calculator.NewAdjuster(business.WhatIfMin, business.WhatIfMax, business.WhatIfPreviewLimit),
		business:  business,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handlers) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 分配表
	router.GET("/table", h.GetTable)
	router.PATCH("/table/cell", h.UpdateCell)
	router.POST("/table/reset", h.ResetTable)

	// 情景切换
	router.GET("/scenario", h.GetScenario)
	router.POST("/scenario/select", h.SelectScenario)

	// 汇总统计
	router.GET("/summary", h.GetSummary)
	router.GET("/summaries", h.GetSummaries)

	// 模拟调整（只读预览）
	router.POST("/whatif", h.WhatIf)

	// 数据导入导出
	router.POST("/upload", h.Upload)
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
	router.GET("/export/csv", h.ExportCSV)

	// 业务配置
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)
}

// Response 通用响应
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// ==================== Status ====================

// StatusResponse 系统状态响应
type StatusResponse struct {
	TotalSeats int             `json:"totalSeats"`
	Parties    int             `json:"parties"`
	Allies     int             `json:"allies"`
	Scenario   model.Scenario  `json:"scenario"`
	Totals     map[string]int  `json:"totals"`
	Balanced   map[string]bool `json:"balanced"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handlers) GetStatus(c *gin.Context) {
	t := h.store.Table()

	totals := make(map[string]int, 3)
	balanced := make(map[string]bool, 3)
	for _, sc := range model.Scenarios() {
		total := t.ScenarioTotal(sc)
		totals[string(sc)] = total
		balanced[string(sc)] = total == model.TotalSeats
	}

	allies := t.Len() - 1
	if allies < 0 {
		allies = 0
	}

	success(c, StatusResponse{
		TotalSeats: model.TotalSeats,
		Parties:    t.Len(),
		Allies:     allies,
		Scenario:   h.store.Scenario(),
		Totals:     totals,
		Balanced:   balanced,
	})
}

// ==================== Table ====================

type tableResponse struct {
	Rows     []model.Row    `json:"rows"`
	Totals   map[string]int `json:"totals"`
	Scenario model.Scenario `json:"scenario"`
}

func (h *Handlers) tablePayload() tableResponse {
	t := h.store.Table()
	totals := make(map[string]int, 3)
	for _, sc := range model.Scenarios() {
		totals[string(sc)] = t.ScenarioTotal(sc)
	}
	return tableResponse{
		Rows:     t.Rows,
		Totals:   totals,
		Scenario: h.store.Scenario(),
	}
}

// GetTable 获取当前分配表
// GET /api/table
func (h *Handlers) GetTable(c *gin.Context) {
	success(c, h.tablePayload())
}

type updateCellRequest struct {
	Scenario model.Scenario `json:"scenario"`
	Index    *int           `json:"index"`
	Value    *int           `json:"value"`
}

// UpdateCell 编辑单元格并触发零和联动计算
// PATCH /api/table/cell
func (h *Handlers) UpdateCell(c *gin.Context) {
	var req updateCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}
	if req.Index == nil || req.Value == nil {
		errorResponse(c, 1001, "参数错误：缺少 index 或 value")
		return
	}
	if !model.IsValidScenario(req.Scenario) {
		errorResponse(c, 1002, "非法情景")
		return
	}

	t := h.store.Table()
	if *req.Index < 0 || *req.Index >= t.Len() {
		errorResponse(c, 1003, "行号越界")
		return
	}

	h.adjusterMu.RLock()
	adjuster := h.adjuster
	h.adjusterMu.RUnlock()

	// 联动计算产生整张新表，写回前不存在未平衡的中间状态
	balanced := adjuster.Apply(t, req.Scenario, *req.Index, *req.Value)
	h.store.SetCurrent(balanced)

	success(c, gin.H{
		"table":     h.tablePayload(),
		"summaries": h.engine.SummarizeAll(balanced),
	})
}

// ResetTable 重置为初始数据
// POST /api/table/reset
func (h *Handlers) ResetTable(c *gin.Context) {
	h.store.Reset()
	success(c, h.tablePayload())
}

// ==================== Scenario ====================

// GetScenario 获取当前情景
// GET /api/scenario
func (h *Handlers) GetScenario(c *gin.Context) {
	success(c, gin.H{
		"scenario":  h.store.Scenario(),
		"scenarios": model.Scenarios(),
	})
}

type selectScenarioRequest struct {
	Scenario model.Scenario `json:"scenario"`
}

// SelectScenario 切换当前情景
// POST /api/scenario/select
func (h *Handlers) SelectScenario(c *gin.Context) {
	var req selectScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}
	if !model.IsValidScenario(req.Scenario) {
		errorResponse(c, 1002, "非法情景")
		return
	}

	h.store.SetScenario(req.Scenario)
	success(c, gin.H{"scenario": req.Scenario})
}

// ==================== Summary ====================

// GetSummary 获取单个情景的汇总统计
// GET /api/summary?scenario=Good
func (h *Handlers) GetSummary(c *gin.Context) {
	sc := model.Scenario(c.Query("scenario"))
	if sc == "" {
		sc = h.store.Scenario()
	}
	if !model.IsValidScenario(sc) {
		errorResponse(c, 1002, "非法情景")
		return
	}

	success(c, h.engine.Summarize(h.store.Table(), sc))
}

// GetSummaries 获取全部情景的汇总统计
// GET /api/summaries
func (h *Handlers) GetSummaries(c *gin.Context) {
	success(c, h.engine.SummarizeAll(h.store.Table()))
}

// ==================== WhatIf ====================

type whatIfRequest struct {
	Scenario model.Scenario `json:"scenario"`
	Party1   *int           `json:"party1"`
}

// WhatIf 模拟调整 Party 1 席位，返回盟友影响预览，不修改存储
// POST /api/whatif
func (h *Handlers) WhatIf(c *gin.Context) {
	var req whatIfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}
	if req.Party1 == nil {
		errorResponse(c, 1001, "参数错误：缺少 party1")
		return
	}
	sc := req.Scenario
	if sc == "" {
		sc = h.store.Scenario()
	}
	if !model.IsValidScenario(sc) {
		errorResponse(c, 1002, "非法情景")
		return
	}

	h.adjusterMu.RLock()
	adjuster := h.adjuster
	h.adjusterMu.RUnlock()

	success(c, adjuster.Preview(h.store.Table(), sc, *req.Party1))
}

// ==================== Upload ====================

// Upload 上传席位数据文件（xlsx/csv），成功后整表替换
// POST /api/upload
func (h *Handlers) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 2001, "请上传文件")
		return
	}
	defer file.Close()

	// 检查文件大小 (10MB)
	if header.Size > 10*1024*1024 {
		errorResponse(c, 2003, "文件过大，最大支持10MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))

	parser := excel.NewParser()
	var table *model.Table
	switch ext {
	case ".xlsx":
		table, err = parser.ParseXLSX(file)
	case ".csv":
		table, err = parser.ParseCSV(file)
	default:
		errorResponse(c, 2002, "仅支持 .xlsx 和 .csv 格式")
		return
	}

	// 上传失败不影响当前数据
	if err != nil {
		errorResponse(c, 2004, "文件解析失败: "+err.Error())
		return
	}

	h.store.Replace(table)

	success(c, gin.H{
		"fileId":    parser.GetFileID(),
		"rows":      table.Len(),
		"table":     h.tablePayload(),
		"summaries": h.engine.SummarizeAll(table),
	})
}

// ==================== Export ====================

// Export 导出 Excel（Seat_Allocation + Summary 两个工作表）
// POST /api/export
func (h *Handlers) Export(c *gin.Context) {
	t := h.store.Table()
	file, err := h.exporter.ExportXLSX(t, h.engine.SummarizeAll(t))
	if err != nil {
		errorResponse(c, 3001, "导出失败: "+err.Error())
		return
	}
	defer file.Close()

	now := time.Now()
	fileName := excel.XLSXFileName(now)

	// 保存临时文件
	exportID := uuid.New().String()
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("seatboard_export_%s.xlsx", exportID))
	if err := file.SaveAs(tmpPath); err != nil {
		errorResponse(c, 3002, "保存失败")
		return
	}

	token := h.downloads.issue(tmpPath, fileName, time.Hour)

	success(c, gin.H{
		"downloadUrl": fmt.Sprintf("/api/export/download/%s", token),
		"fileName":    fileName,
		"expiresAt":   time.Now().Add(time.Hour).Format(time.RFC3339),
	})
}

// DownloadExport 下载导出的 Excel 文件
// GET /api/export/download/:token
func (h *Handlers) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	ticket, ok := h.downloads.redeem(token)
	if !ok {
		c.String(http.StatusNotFound, "文件不存在或已过期")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", ticket.name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(ticket.path)
}

// ExportCSV 直接下载 CSV（全部列，无索引列）
// GET /api/export/csv
func (h *Handlers) ExportCSV(c *gin.Context) {
	t := h.store.Table()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", excel.CSVFileName(time.Now())))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	// 响应头已发出，写入失败只能记录
	if err := h.exporter.ExportCSV(t, c.Writer); err != nil {
		log.Printf("导出 CSV 写入失败: %v", err)
	}
}

// ==================== Config ====================

// GetConfig 获取业务配置
// GET /api/config
func (h *Handlers) GetConfig(c *gin.Context) {
	h.adjusterMu.RLock()
	business := h.business
	h.adjusterMu.RUnlock()

	success(c, gin.H{
		"whatIfMin":          business.WhatIfMin,
		"whatIfMax":          business.WhatIfMax,
		"whatIfPreviewLimit": business.WhatIfPreviewLimit,
	})
}

type updateConfigRequest struct {
	WhatIfMin          *int `json:"whatIfMin"`
	WhatIfMax          *int `json:"whatIfMax"`
	WhatIfPreviewLimit *int `json:"whatIfPreviewLimit"`
}

// UpdateConfig 更新业务配置（模拟调整滑杆范围与预览行数）
// PATCH /api/config
func (h *Handlers) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}

	h.adjusterMu.Lock()
	if req.WhatIfMin != nil {
		h.business.WhatIfMin = *req.WhatIfMin
	}
	if req.WhatIfMax != nil {
		h.business.WhatIfMax = *req.WhatIfMax
	}
	if req.WhatIfPreviewLimit != nil {
		h.business.WhatIfPreviewLimit = *req.WhatIfPreviewLimit
	}
	h.business.Normalize()
	h.adjuster = calculator.NewAdjuster(h.business.WhatIfMin, h.business.WhatIfMax, h.business.WhatIfPreviewLimit)
	business := h.business
	h.adjusterMu.Unlock()

	success(c, gin.H{
		"whatIfMin":          business.WhatIfMin,
		"whatIfMax":          business.WhatIfMax,
		"whatIfPreviewLimit": business.WhatIfPreviewLimit,
	})
}
